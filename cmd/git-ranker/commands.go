/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chainguard-dev/clog"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/evals"
	"github.com/santosh898/git-ranker/analyst"
	"github.com/santosh898/git-ranker/ghrepo"
)

// CLI defines the command-line interface.
type CLI struct {
	Review    ReviewCmd    `cmd:"" help:"Review every package in a repository."`
	Structure StructureCmd `cmd:"" help:"List every file path in a repository."`
	Cat       CatCmd       `cmd:"" help:"Print a file from a repository."`
}

// ReviewCmd runs the analyst agent.
type ReviewCmd struct {
	URL    string `arg:"" help:"GitHub repository URL."`
	Format string `short:"f" enum:"markdown,json,yaml" default:"markdown" help:"Output format (markdown, json, yaml)."`
	Model  string `help:"Model to run, overriding MODEL."`
}

func (c *ReviewCmd) Run(ctx context.Context, cfg *config, stdout io.Writer) error {
	gh, err := cfg.github(ctx)
	if err != nil {
		return err
	}
	model := cfg.Model
	if c.Model != "" {
		model = c.Model
	}

	a, err := analyst.New(ctx, analyst.Options{
		Model:   model,
		Backend: cfg.backend(),
		GitHub:  gh,
	})
	if err != nil {
		return err
	}

	// Trajectory checks report to the log and the metrics textfile.
	ctx = agenttrace.WithTracer(ctx, evals.Tracer(func(check string) *evals.MetricsObserver {
		return evals.NewMetricsObserver(ctx, check)
	}, analyst.Checks()))

	review, err := a.Review(ctx, c.URL)
	if err != nil {
		return err
	}
	return review.Write(stdout, analyst.Format(c.Format))
}

// StructureCmd prints the repository tree the agent would see.
type StructureCmd struct {
	URL string `arg:"" help:"GitHub repository URL."`
}

func (c *StructureCmd) Run(ctx context.Context, cfg *config, stdout io.Writer) error {
	ref, err := ghrepo.ParseURL(c.URL)
	if err != nil {
		return err
	}
	gh, err := cfg.github(ctx)
	if err != nil {
		return err
	}

	tree, err := gh.Structure(ctx, ref, "")
	if err != nil {
		return err
	}
	for _, f := range tree.Failures {
		clog.FromContext(ctx).With("failure", f.String()).Warn("Directory skipped")
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(tree.Paths)
}

// CatCmd prints one decoded file.
type CatCmd struct {
	URL  string `arg:"" help:"GitHub repository URL."`
	Path string `arg:"" help:"File path relative to the repository root."`
}

func (c *CatCmd) Run(ctx context.Context, cfg *config, stdout io.Writer) error {
	gh, err := cfg.github(ctx)
	if err != nil {
		return err
	}
	ref, err := ghrepo.ParseURL(c.URL)
	if err != nil {
		return err
	}
	content, failure, err := gh.File(ctx, ref, c.Path)
	if err != nil {
		return err
	}
	if failure != nil {
		return fmt.Errorf("fetching %s from %s: %s", c.Path, ref, failure)
	}
	_, err = io.WriteString(stdout, content)
	return err
}
