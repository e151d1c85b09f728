/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const instrumentationName = "git-ranker.agents.agenttrace"

func tracer() oteltrace.Tracer {
	return otel.Tracer(instrumentationName, oteltrace.WithInstrumentationVersion("1.0.0"))
}

// ReasoningContent is model reasoning captured during an execution.
type ReasoningContent struct {
	Thinking string `json:"thinking"`
}

// ToolCall is a single tool invocation within a trace.
type ToolCall[T any] struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Params    map[string]any `json:"params"`
	Result    any            `json:"result"`
	Error     error          `json:"error,omitempty"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`

	trace *Trace[T]
	mu    sync.Mutex
	span  oteltrace.Span
}

// Trace is one agent execution, from prompt to result.
type Trace[T any] struct {
	ID          string             `json:"id"`
	InputPrompt string             `json:"input_prompt"`
	ExecContext ExecutionContext   `json:"exec_context,omitempty"`
	ToolCalls   []*ToolCall[T]     `json:"tool_calls"`
	Reasoning   []ReasoningContent `json:"reasoning,omitempty"`
	Result      T                  `json:"result"`
	Error       error              `json:"error,omitempty"`
	StartTime   time.Time          `json:"start_time"`
	EndTime     time.Time          `json:"end_time"`
	Metadata    map[string]any     `json:"metadata,omitempty"`

	tracer Tracer[T]
	mu     sync.Mutex
	ctx    context.Context
	span   oteltrace.Span
}

func newTraceWithTracer[T any](ctx context.Context, t Tracer[T], prompt string) *Trace[T] {
	execCtx := GetExecutionContext(ctx)

	attrs := append([]attribute.KeyValue{attribute.String("agent.prompt", prompt)}, execCtx.spanAttributes()...)
	ctx, span := tracer().Start(ctx, "agent.execution", oteltrace.WithAttributes(attrs...))

	return &Trace[T]{
		ID:          generateTraceID(),
		InputPrompt: prompt,
		ExecContext: execCtx,
		ToolCalls:   []*ToolCall[T]{},
		StartTime:   time.Now(),
		Metadata:    make(map[string]any),
		tracer:      t,
		ctx:         ctx,
		span:        span,
	}
}

// StartToolCall starts a tool call. It joins the trace when completed.
func (t *Trace[T]) StartToolCall(id, name string, params map[string]any) *ToolCall[T] {
	_, span := tracer().Start(t.ctx, "agent.tool_call", oteltrace.WithAttributes(
		attribute.String("tool.name", name),
		attribute.String("tool.id", id),
	))

	return &ToolCall[T]{
		ID:        id,
		Name:      name,
		Params:    params,
		StartTime: time.Now(),
		trace:     t,
		span:      span,
	}
}

// RecordTokenUsage records the model and its token counts on the execution span.
func (t *Trace[T]) RecordTokenUsage(model string, inputTokens, outputTokens int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.span == nil {
		return
	}
	t.span.SetAttributes(
		attribute.String("model", model),
		attribute.Int64("tokens.input", inputTokens),
		attribute.Int64("tokens.output", outputTokens),
		attribute.Int64("tokens.total", inputTokens+outputTokens),
	)
}

// BadToolCall records a tool call that never ran, because its name was
// unknown or its arguments could not be decoded.
func (t *Trace[T]) BadToolCall(id, name string, params map[string]any, err error) {
	_, span := tracer().Start(t.ctx, "agent.tool_call", oteltrace.WithAttributes(
		attribute.String("tool.name", name),
		attribute.String("tool.id", id),
	))
	endSpan(span, err)

	now := time.Now()
	tc := &ToolCall[T]{
		ID:        id,
		Name:      name,
		Params:    params,
		StartTime: now,
		EndTime:   now,
		Error:     err,
		trace:     t,
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.ToolCalls = append(t.ToolCalls, tc)
}

// Complete finishes the tool call and appends it to its trace.
func (tc *ToolCall[T]) Complete(result any, err error) {
	tc.mu.Lock()
	tc.Result = result
	tc.Error = err
	tc.EndTime = time.Now()
	parent, span := tc.trace, tc.span
	tc.mu.Unlock()

	endSpan(span, err)

	parent.mu.Lock()
	defer parent.mu.Unlock()
	parent.ToolCalls = append(parent.ToolCalls, tc)
}

// Duration returns how long the tool call ran, or has run so far.
func (tc *ToolCall[T]) Duration() time.Duration {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return elapsed(tc.StartTime, tc.EndTime)
}

// Complete finishes the trace and hands it to its tracer.
func (t *Trace[T]) Complete(result T, err error) {
	t.mu.Lock()
	t.Result = result
	t.Error = err
	t.EndTime = time.Now()
	recorder, span := t.tracer, t.span
	t.mu.Unlock()

	endSpan(span, err)
	recorder.RecordTrace(t)
}

// Duration returns how long the trace ran, or has run so far.
func (t *Trace[T]) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return elapsed(t.StartTime, t.EndTime)
}

// String renders the trace for logs. Long values are truncated.
func (t *Trace[T]) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Trace %s ===\n", t.ID)
	if t.ExecContext.Repository != "" {
		fmt.Fprintf(&sb, "Repository: %s\n", t.ExecContext.Repository)
	}
	fmt.Fprintf(&sb, "Prompt: %q\n", truncate(t.InputPrompt, 200))
	fmt.Fprintf(&sb, "Duration: %v\n", elapsed(t.StartTime, t.EndTime))

	if len(t.Reasoning) > 0 {
		fmt.Fprintf(&sb, "\nReasoning (%d blocks):\n", len(t.Reasoning))
		for i, r := range t.Reasoning {
			fmt.Fprintf(&sb, "  [%d] %s\n", i+1, truncate(r.Thinking, 200))
		}
	}

	if len(t.ToolCalls) == 0 {
		sb.WriteString("\nNo tool calls\n")
	} else {
		fmt.Fprintf(&sb, "\nTool Calls (%d):\n", len(t.ToolCalls))
	}
	for i, tc := range t.ToolCalls {
		fmt.Fprintf(&sb, "  [%d] %s (ID: %s) %v\n", i+1, tc.Name, tc.ID, elapsed(tc.StartTime, tc.EndTime))
		for _, k := range sortedKeys(tc.Params) {
			fmt.Fprintf(&sb, "      %s: %s\n", k, truncate(fmt.Sprint(tc.Params[k]), 200))
		}
		switch {
		case tc.Error != nil:
			fmt.Fprintf(&sb, "      Error: %v\n", tc.Error)
		case tc.Result != nil:
			fmt.Fprintf(&sb, "      Result: %s\n", truncate(fmt.Sprint(tc.Result), 200))
		}
	}

	sb.WriteString("\nCompletion:\n")
	if t.Error != nil {
		fmt.Fprintf(&sb, "  Error: %v\n", t.Error)
	} else {
		fmt.Fprintf(&sb, "  Result: %s\n", truncate(fmt.Sprintf("%+v", t.Result), 500))
	}

	if len(t.Metadata) > 0 {
		sb.WriteString("\nMetadata:\n")
		for _, k := range sortedKeys(t.Metadata) {
			fmt.Fprintf(&sb, "  %s: %v\n", k, t.Metadata[k])
		}
	}
	return sb.String()
}

func endSpan(span oteltrace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func elapsed(start, end time.Time) time.Duration {
	if end.IsZero() {
		return time.Since(start)
	}
	return end.Sub(start)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// generateTraceID returns an ID of the form YYYYMMDD-HHMMSS-xxxxxxxx.
func generateTraceID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return time.Now().Format("20060102-150405.000000")
	}
	return fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), hex.EncodeToString(b))
}
