/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"slices"

	"github.com/santosh898/git-ranker/agents/agenttrace"
)

// Observer receives the outcome of evaluating completed traces.
type Observer interface {
	// Fail marks the evaluation of the current trace as failed.
	Fail(string)
	// Log records a message without failing.
	Log(string)
	// Increment is called once per evaluated trace.
	Increment()
}

// ObservableTraceCallback evaluates a completed trace, reporting to o.
type ObservableTraceCallback[T any] func(o Observer, trace *agenttrace.Trace[T])

// Inject binds an Observer to a callback, producing a TraceCallback.
func Inject[T any](obs Observer, callback ObservableTraceCallback[T]) agenttrace.TraceCallback[T] {
	return func(trace *agenttrace.Trace[T]) {
		obs.Increment()
		callback(obs, trace)
	}
}

// Tracer returns a ByCode tracer that runs every named check against each
// completed trace, giving each check the observer newObserver returns for
// its name.
func Tracer[T any, O Observer](newObserver func(name string) O, checks map[string]ObservableTraceCallback[T]) agenttrace.Tracer[T] {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	slices.Sort(names)

	callbacks := make([]agenttrace.TraceCallback[T], 0, len(names))
	for _, name := range names {
		callbacks = append(callbacks, Inject(newObserver(name), checks[name]))
	}
	return agenttrace.ByCode(callbacks...)
}
