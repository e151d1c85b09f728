/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package analyst

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/metaagent"
	"github.com/santosh898/git-ranker/agents/toolcall"
	"github.com/santosh898/git-ranker/ghrepo"
)

// Name is the agent name.
const Name = "Github Analyst"

// Callbacks is the tool stack the analyst runs with: Empty -> Repository.
type Callbacks = toolcall.RepositoryTools[toolcall.EmptyTools]

// Options configures an Analyst.
type Options struct {
	// Model selects the model; see metaagent.New for the supported prefixes.
	Model string
	// Backend holds the credentials for Model.
	Backend metaagent.Backend
	// GitHub serves the repository tools.
	GitHub *ghrepo.Client
}

// Analyst reviews repositories.
type Analyst struct {
	agent  metaagent.Agent[*Request, *Review, Callbacks]
	github *ghrepo.Client
	model  string
}

// New builds the analyst agent.
func New(ctx context.Context, opts Options) (*Analyst, error) {
	if opts.GitHub == nil {
		return nil, errors.New("a GitHub client is required")
	}

	agent, err := metaagent.New[*Request](ctx, opts.Backend, opts.Model, metaagent.Config[*Review, Callbacks]{
		Name:               Name,
		SystemInstructions: systemInstructions,
		UserPrompt:         userPrompt,
		Tools: toolcall.NewRepositoryToolsProvider[*Review, toolcall.EmptyTools](
			toolcall.NewEmptyToolsProvider[*Review]()),
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s agent: %w", Name, err)
	}
	return &Analyst{agent: agent, github: opts.GitHub, model: opts.Model}, nil
}

// Review runs the agent against the repository at url. The URL is checked
// before any model call; an unparseable one returns an error wrapping
// ghrepo.ErrInvalidInput.
func (a *Analyst) Review(ctx context.Context, url string) (*Review, error) {
	ref, err := ghrepo.ParseURL(url)
	if err != nil {
		return nil, err
	}

	ctx = agenttrace.WithExecutionContext(ctx, agenttrace.ExecutionContext{
		Repository: ref.String(),
		Model:      a.model,
	})
	log := clog.FromContext(ctx).With("repository", ref.String()).With("model", a.model)
	log.Info("Reviewing repository")

	review, err := a.agent.Execute(ctx, &Request{URL: url, Owner: ref.Owner, Repo: ref.Repo},
		toolcall.NewRepositoryTools(toolcall.EmptyTools{}, a.github.Callbacks()))
	if err != nil {
		return nil, fmt.Errorf("reviewing %s: %w", ref, err)
	}
	if review == nil {
		return nil, fmt.Errorf("reviewing %s: agent returned no review", ref)
	}
	// Reviews parsed from a text reply never went through submit_review.
	if err := review.Validate(); err != nil {
		return nil, fmt.Errorf("reviewing %s: invalid review: %w", ref, err)
	}

	review.Repository = ref.String()
	log.With("packages", len(review.Packages)).Info("Review complete")
	return review, nil
}
