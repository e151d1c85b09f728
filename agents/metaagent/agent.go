/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package metaagent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/santosh898/git-ranker/agents/promptbuilder"
)

// Agent executes requests against one model with a fixed tool set.
type Agent[Req promptbuilder.Bindable, Resp, CB any] interface {
	// Execute builds the tools from callbacks and runs the conversation.
	Execute(ctx context.Context, request Req, callbacks CB) (Resp, error)
}

// New returns an agent for model, chosen by prefix: claude-*, gemini-* or grok-*.
func New[Req promptbuilder.Bindable, Resp, CB any](
	ctx context.Context,
	backend Backend,
	model string,
	config Config[Resp, CB],
) (Agent[Req, Resp, CB], error) {
	if config.UserPrompt == nil {
		return nil, errors.New("user prompt is required")
	}
	if config.Tools == nil {
		return nil, errors.New("tool provider is required")
	}

	switch lower := strings.ToLower(model); {
	case strings.HasPrefix(lower, "gemini-"):
		return newGoogleAgent[Req](ctx, backend, model, config)
	case strings.HasPrefix(lower, "claude-"):
		return newClaudeAgent[Req](ctx, backend, model, config)
	case strings.HasPrefix(lower, "grok-"):
		return newOpenAIAgent[Req](backend, model, config)
	default:
		return nil, fmt.Errorf("unsupported model: %s (expected claude-*, gemini-* or grok-*)", model)
	}
}
