/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package metaagent

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/santosh898/git-ranker/agents/executor/googleexecutor"
	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/submitresult"
	"github.com/santosh898/git-ranker/agents/toolcall/googletool"
	"google.golang.org/genai"
)

type googleAgent[Req promptbuilder.Bindable, Resp, CB any] struct {
	executor googleexecutor.Interface[Req, Resp]
	config   Config[Resp, CB]
}

func newGoogleAgent[Req promptbuilder.Bindable, Resp, CB any](
	ctx context.Context,
	backend Backend,
	model string,
	config Config[Resp, CB],
) (Agent[Req, Resp, CB], error) {
	var cc *genai.ClientConfig
	switch {
	case backend.GeminiAPIKey != "":
		cc = &genai.ClientConfig{
			APIKey:     backend.GeminiAPIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: backend.HTTPClient,
		}
	case backend.ProjectID != "":
		cc = &genai.ClientConfig{
			Project:  backend.ProjectID,
			Location: backend.Region,
			Backend:  genai.BackendVertexAI,
		}
	default:
		return nil, errors.New("gemini models need a Gemini API key or a Vertex AI project")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating Google AI client: %w", err)
	}

	executorOpts := []googleexecutor.Option[Req, Resp]{
		googleexecutor.WithModel[Req, Resp](model),
		googleexecutor.WithTemperature[Req, Resp](0.2),
		googleexecutor.WithMaxOutputTokens[Req, Resp](32768),
		googleexecutor.WithSubmitResultProvider[Req, Resp](submitresult.ToolForResponse[Resp]),
	}
	if config.SystemInstructions != nil {
		executorOpts = append(executorOpts, googleexecutor.WithSystemInstructions[Req, Resp](config.SystemInstructions))
	}

	executor, err := googleexecutor.New[Req, Resp](client, config.UserPrompt, executorOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating Google executor: %w", err)
	}
	return &googleAgent[Req, Resp, CB]{executor: executor, config: config}, nil
}

func (a *googleAgent[Req, Resp, CB]) Execute(ctx context.Context, request Req, callbacks CB) (Resp, error) {
	clog.FromContext(ctx).With("agent", a.config.Name).Info("Running Gemini agent")
	return a.executor.Execute(ctx, request, googletool.Map(a.config.Tools.Tools(callbacks)))
}
