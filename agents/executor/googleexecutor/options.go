/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santosh898/git-ranker/agents/executor/retry"
	"github.com/santosh898/git-ranker/agents/metrics"
	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/toolcall"
	"github.com/santosh898/git-ranker/agents/toolcall/googletool"
)

// Option configures an executor.
type Option[Request promptbuilder.Bindable, Response any] func(*executor[Request, Response]) error

// WithModel overrides DefaultModel. The name must start with "gemini-".
func WithModel[Request promptbuilder.Bindable, Response any](model string) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if !strings.HasPrefix(model, "gemini-") {
			return fmt.Errorf("model %q does not appear to be a Gemini model (expected gemini-* format)", model)
		}
		e.model = model
		return nil
	}
}

// WithTemperature sets the sampling temperature. Gemini accepts [0, 2].
func WithTemperature[Request promptbuilder.Bindable, Response any](temperature float32) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if temperature < 0.0 || temperature > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temperature)
		}
		e.temperature = temperature
		return nil
	}
}

// WithMaxOutputTokens sets the output token limit, at most 32768.
func WithMaxOutputTokens[Request promptbuilder.Bindable, Response any](tokens int32) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if tokens <= 0 {
			return fmt.Errorf("max output tokens must be positive, got %d", tokens)
		}
		if tokens > 32768 {
			return fmt.Errorf("max output tokens %d exceeds maximum of 32768", tokens)
		}
		e.maxOutputTokens = tokens
		return nil
	}
}

// WithSystemInstructions sets the system instruction.
func WithSystemInstructions[Request promptbuilder.Bindable, Response any](prompt *promptbuilder.Prompt) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if prompt == nil {
			return errors.New("system instructions prompt cannot be nil")
		}
		e.systemInstructions = prompt
		return nil
	}
}

// WithThinking enables thinking with a token budget below the max output
// tokens, or -1 to let the model size it. Thoughts and output share the
// output limit.
func WithThinking[Request promptbuilder.Bindable, Response any](budgetTokens int32) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		switch {
		case budgetTokens == -1:
		case budgetTokens <= 0:
			return fmt.Errorf("thinking budget must be positive (or -1 for dynamic), got %d", budgetTokens)
		case budgetTokens >= e.maxOutputTokens:
			return fmt.Errorf("thinking budget (%d) must be less than max_output_tokens (%d)", budgetTokens, e.maxOutputTokens)
		}
		e.thinkingBudget = &budgetTokens
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
		meta := googletool.FromTool(tool)
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
