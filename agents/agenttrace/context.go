/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// ExecutionContext describes the review an agent execution belongs to.
type ExecutionContext struct {
	// Repository is the "owner/repo" under review.
	Repository string `json:"repository,omitempty"`
	// Model is the model identifier the execution runs against.
	Model string `json:"model,omitempty"`
	// TurnNumber counts conversation rounds, starting at 1.
	TurnNumber int `json:"turn_number,omitempty"`
}

// EnrichAttributes appends the repository and turn to baseAttrs. The model is
// left to the caller since every metric already carries it.
func (e ExecutionContext) EnrichAttributes(baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, len(baseAttrs), len(baseAttrs)+2)
	copy(attrs, baseAttrs)

	if e.Repository != "" {
		attrs = append(attrs, attribute.String("repository", e.Repository))
	}
	return append(attrs, attribute.Int("turn", e.TurnNumber))
}

// spanAttributes are the attributes recorded on the execution span.
func (e ExecutionContext) spanAttributes() []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if e.Repository != "" {
		attrs = append(attrs, attribute.String("repository", e.Repository))
	}
	if e.Model != "" {
		attrs = append(attrs, attribute.String("model", e.Model))
	}
	return attrs
}

type executionContextKey struct{}

// WithExecutionContext attaches execCtx to ctx.
func WithExecutionContext(ctx context.Context, execCtx ExecutionContext) context.Context {
	return context.WithValue(ctx, executionContextKey{}, execCtx)
}

// GetExecutionContext returns the execution context attached to ctx, or the
// zero value.
func GetExecutionContext(ctx context.Context) ExecutionContext {
	execCtx, _ := ctx.Value(executionContextKey{}).(ExecutionContext)
	return execCtx
}
