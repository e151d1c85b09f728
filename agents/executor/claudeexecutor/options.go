/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santosh898/git-ranker/agents/executor/retry"
	"github.com/santosh898/git-ranker/agents/metrics"
	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/toolcall"
	"github.com/santosh898/git-ranker/agents/toolcall/claudetool"
)

// Option configures the executor.
type Option[Request promptbuilder.Bindable, Response any] func(*executor[Request, Response]) error

// WithMaxTokens sets the response token limit, at most 32000.
func WithMaxTokens[Request promptbuilder.Bindable, Response any](tokens int64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		if tokens > 32000 {
			return fmt.Errorf("max tokens %d exceeds maximum of 32000", tokens)
		}
		e.maxTokens = tokens
		return nil
	}
}

// WithTemperature sets the sampling temperature in [0, 1].
func WithTemperature[Request promptbuilder.Bindable, Response any](temp float64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
		}
		e.temperature = temp
		return nil
	}
}

// WithSystemInstructions sets the system prompt.
func WithSystemInstructions[Request promptbuilder.Bindable, Response any](prompt *promptbuilder.Prompt) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if prompt == nil {
			return errors.New("system instructions prompt cannot be nil")
		}
		e.systemInstructions = prompt
		return nil
	}
}

// WithModel overrides DefaultModel. The name must start with "claude-".
func WithModel[Request promptbuilder.Bindable, Response any](model string) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if !strings.HasPrefix(model, "claude-") {
			return fmt.Errorf("model %q does not appear to be a Claude model (expected claude-* format)", model)
		}
		e.modelName = model
		return nil
	}
}

// WithThinking enables extended thinking with a budget of at least 1024
// tokens, below the max tokens. Apply it after WithMaxTokens.
func WithThinking[Request promptbuilder.Bindable, Response any](budgetTokens int64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if budgetTokens < 1024 {
			return fmt.Errorf("thinking budget_tokens must be at least 1024, got %d", budgetTokens)
		}
		if budgetTokens >= e.maxTokens {
			return fmt.Errorf("thinking budget_tokens (%d) must be less than max_tokens (%d)", budgetTokens, e.maxTokens)
		}
		e.thinkingBudgetTokens = &budgetTokens
		return nil
	}
}

// SubmitResultProvider constructs the tool that ends the conversation.
type SubmitResultProvider[Response any] func() (toolcall.Tool[Response], error)

// WithSubmitResultProvider registers the submit tool returned by provider.
func WithSubmitResultProvider[Request promptbuilder.Bindable, Response any](provider SubmitResultProvider[Response]) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if provider == nil {
			return errors.New("submit_result provider cannot be nil")
		}
		tool, err := provider()
		if err != nil {
			return err
		}
		meta := claudetool.FromTool(tool)
		e.submitTool = &meta
		return nil
	}
}

// WithAttributeEnricher replaces the metric attribute enricher.
func WithAttributeEnricher[Request promptbuilder.Bindable, Response any](enricher metrics.AttributeEnricher) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		e.genaiMetrics.SetAttributeEnricher(enricher)
		return nil
	}
}

// WithRetryConfig overrides retry.DefaultRetryConfig.
func WithRetryConfig[Request promptbuilder.Bindable, Response any](cfg retry.RetryConfig) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		e.retryConfig = cfg
		return nil
	}
}
