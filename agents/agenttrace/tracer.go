/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
)

// Tracer creates traces and records them once they complete.
type Tracer[T any] interface {
	// NewTrace creates a new trace with the given prompt
	NewTrace(ctx context.Context, prompt string) *Trace[T]
	// RecordTrace records a completed trace
	RecordTrace(trace *Trace[T])
}

type tracerKey[T any] struct{}

// WithTracer returns a context carrying tracer for results of type T.
func WithTracer[T any](ctx context.Context, tracer Tracer[T]) context.Context {
	return context.WithValue(ctx, tracerKey[T]{}, tracer)
}

// TracerFromContext returns the tracer for T carried by ctx, falling back to
// one that logs completed traces.
func TracerFromContext[T any](ctx context.Context) Tracer[T] {
	if tracer, ok := ctx.Value(tracerKey[T]{}).(Tracer[T]); ok {
		return tracer
	}
	return NewDefaultTracer[T](ctx)
}

// StartTrace starts a new trace using the tracer from the context.
func StartTrace[T any](ctx context.Context, prompt string) *Trace[T] {
	return TracerFromContext[T](ctx).NewTrace(ctx, prompt)
}

// TraceCallback receives completed traces.
type TraceCallback[T any] func(*Trace[T])

type byCodeTracer[T any] struct {
	callbacks []TraceCallback[T]
}

// ByCode returns a Tracer that hands each completed trace to every callback,
// running the callbacks concurrently. Nil callbacks are skipped.
func ByCode[T any](callbacks ...TraceCallback[T]) Tracer[T] {
	return &byCodeTracer[T]{callbacks: callbacks}
}

func (t *byCodeTracer[T]) NewTrace(ctx context.Context, prompt string) *Trace[T] {
	return newTraceWithTracer[T](ctx, t, prompt)
}

func (t *byCodeTracer[T]) RecordTrace(trace *Trace[T]) {
	var g errgroup.Group
	for _, callback := range t.callbacks {
		if callback == nil {
			continue
		}
		g.Go(func() error {
			callback(trace)
			return nil
		})
	}
	_ = g.Wait()
}

// NewDefaultTracer returns a tracer that logs a summary of each completed
// trace at debug level.
func NewDefaultTracer[T any](ctx context.Context) Tracer[T] {
	logger := clog.FromContext(ctx)
	return ByCode[T](func(trace *Trace[T]) {
		logger.With("trace_id", trace.ID).
			With("repository", trace.ExecContext.Repository).
			With("duration_ms", trace.Duration().Milliseconds()).
			With("tool_calls", len(trace.ToolCalls)).
			Debug("Agent trace completed", "trace", trace.String())
	})
}
