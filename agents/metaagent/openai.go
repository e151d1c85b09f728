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
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/santosh898/git-ranker/agents/executor/openaiexecutor"
	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/submitresult"
	"github.com/santosh898/git-ranker/agents/toolcall/openaitool"
)

type openAIAgent[Req promptbuilder.Bindable, Resp, CB any] struct {
	executor openaiexecutor.Interface[Req, Resp]
	config   Config[Resp, CB]
}

func newOpenAIAgent[Req promptbuilder.Bindable, Resp, CB any](
	backend Backend,
	model string,
	config Config[Resp, CB],
) (Agent[Req, Resp, CB], error) {
	if backend.XAIAPIKey == "" {
		return nil, errors.New("grok models need an xAI API key")
	}
	baseURL := backend.XAIBaseURL
	if baseURL == "" {
		baseURL = openaiexecutor.DefaultBaseURL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(backend.XAIAPIKey),
		option.WithBaseURL(baseURL),
		// The executor retries with its own backoff.
		option.WithMaxRetries(0),
	}
	if backend.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(backend.HTTPClient))
	}

	executorOpts := []openaiexecutor.Option[Req, Resp]{
		openaiexecutor.WithModel[Req, Resp](model),
		openaiexecutor.WithTemperature[Req, Resp](0.2),
		openaiexecutor.WithSubmitResultProvider[Req, Resp](submitresult.ToolForResponse[Resp]),
	}
	if config.SystemInstructions != nil {
		executorOpts = append(executorOpts, openaiexecutor.WithSystemInstructions[Req, Resp](config.SystemInstructions))
	}

	executor, err := openaiexecutor.New[Req, Resp](openai.NewClient(opts...), config.UserPrompt, executorOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating xAI executor: %w", err)
	}
	return &openAIAgent[Req, Resp, CB]{executor: executor, config: config}, nil
}

func (a *openAIAgent[Req, Resp, CB]) Execute(ctx context.Context, request Req, callbacks CB) (Resp, error) {
	clog.FromContext(ctx).With("agent", a.config.Name).Info("Running xAI agent")
	return a.executor.Execute(ctx, request, openaitool.Map(a.config.Tools.Tools(callbacks)))
}
