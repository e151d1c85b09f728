/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package metaagent

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/vertex"
	"github.com/chainguard-dev/clog"
	"github.com/santosh898/git-ranker/agents/executor/claudeexecutor"
	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/submitresult"
	"github.com/santosh898/git-ranker/agents/toolcall/claudetool"
)

type claudeAgent[Req promptbuilder.Bindable, Resp, CB any] struct {
	executor claudeexecutor.Interface[Req, Resp]
	config   Config[Resp, CB]
}

func newClaudeAgent[Req promptbuilder.Bindable, Resp, CB any](
	ctx context.Context,
	backend Backend,
	model string,
	config Config[Resp, CB],
) (Agent[Req, Resp, CB], error) {
	var opts []option.RequestOption
	switch {
	case backend.AnthropicAPIKey != "":
		opts = append(opts, option.WithAPIKey(backend.AnthropicAPIKey))
		if backend.HTTPClient != nil {
			opts = append(opts, option.WithHTTPClient(backend.HTTPClient))
		}
	case backend.ProjectID != "":
		opts = append(opts, vertex.WithGoogleAuth(ctx, backend.Region, backend.ProjectID))
	default:
		return nil, errors.New("claude models need an Anthropic API key or a Vertex AI project")
	}

	executorOpts := []claudeexecutor.Option[Req, Resp]{
		claudeexecutor.WithModel[Req, Resp](model),
		claudeexecutor.WithTemperature[Req, Resp](0.2),
		claudeexecutor.WithMaxTokens[Req, Resp](32000),
		claudeexecutor.WithSubmitResultProvider[Req, Resp](submitresult.ToolForResponse[Resp]),
	}
	if config.SystemInstructions != nil {
		executorOpts = append(executorOpts, claudeexecutor.WithSystemInstructions[Req, Resp](config.SystemInstructions))
	}

	executor, err := claudeexecutor.New[Req, Resp](anthropic.NewClient(opts...), config.UserPrompt, executorOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating Claude executor: %w", err)
	}
	return &claudeAgent[Req, Resp, CB]{executor: executor, config: config}, nil
}

func (a *claudeAgent[Req, Resp, CB]) Execute(ctx context.Context, request Req, callbacks CB) (Resp, error) {
	clog.FromContext(ctx).With("agent", a.config.Name).Info("Running Claude agent")
	return a.executor.Execute(ctx, request, claudetool.Map(a.config.Tools.Tools(callbacks)))
}
