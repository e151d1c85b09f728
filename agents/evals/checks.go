/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/santosh898/git-ranker/agents/agenttrace"
)

// RequiredToolCalls fails traces that never call one of toolNames.
func RequiredToolCalls[T any](toolNames ...string) ObservableTraceCallback[T] {
	required := make(map[string]struct{}, len(toolNames))
	for _, name := range toolNames {
		required[name] = struct{}{}
	}

	return func(o Observer, trace *agenttrace.Trace[T]) {
		missing := maps.Clone(required)
		for _, tc := range trace.ToolCalls {
			delete(missing, tc.Name)
		}
		if len(missing) > 0 {
			o.Fail(fmt.Sprintf("missing required tool calls: %v", slices.Sorted(maps.Keys(missing))))
		}
	}
}

// OnlyToolCalls fails traces that call any tool outside toolNames.
func OnlyToolCalls[T any](toolNames ...string) ObservableTraceCallback[T] {
	return func(o Observer, trace *agenttrace.Trace[T]) {
		for _, tc := range trace.ToolCalls {
			if !slices.Contains(toolNames, tc.Name) {
				o.Fail(fmt.Sprintf("unexpected tool call %q, only allowed: %v", tc.Name, toolNames))
				return
			}
		}
	}
}

// Completed fails traces that ended in an error.
func Completed[T any]() ObservableTraceCallback[T] {
	return func(o Observer, trace *agenttrace.Trace[T]) {
		if trace.Error != nil {
			o.Fail(fmt.Sprintf("trace error: got = %v, wanted = nil", trace.Error))
		}
	}
}

// ResultValidator runs validator on the trace result. A nil result fails
// without calling validator.
func ResultValidator[T any](validator func(result T) error) ObservableTraceCallback[T] {
	return func(o Observer, trace *agenttrace.Trace[T]) {
		v := reflect.ValueOf(trace.Result)
		if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
			o.Fail("result is nil")
			return
		}
		if err := validator(trace.Result); err != nil {
			o.Fail(err.Error())
		}
	}
}
