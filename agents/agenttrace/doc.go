/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package agenttrace records agent executions as traces.

A Trace[T] follows one execution from prompt to result, collecting each
ToolCall[T] the model made along the way. Traces and tool calls are also
OpenTelemetry spans. A Tracer[T] creates traces and receives them on
completion; ByCode builds one from plain callbacks.

	ctx = agenttrace.WithExecutionContext(ctx, agenttrace.ExecutionContext{
		Repository: "octo/demo",
		Model:      "grok-beta",
	})
	ctx = agenttrace.WithTracer[*analyst.Review](ctx, agenttrace.ByCode(func(t *agenttrace.Trace[*analyst.Review]) {
		fmt.Println(t)
	}))

	trace := agenttrace.StartTrace[*analyst.Review](ctx, prompt)
	tc := trace.StartToolCall("call_1", "get_github_structure", map[string]any{"url": url})
	tc.Complete(structure, nil)
	trace.Complete(review, nil)

Without a tracer in the context, StartTrace logs completed traces at debug
level.
*/
package agenttrace
