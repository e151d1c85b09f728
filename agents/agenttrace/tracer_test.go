/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
)

func randomString() string {
	return generateTraceID()
}

type mockTracer[T any] struct {
	traces *[]*Trace[T]
}

func (m *mockTracer[T]) NewTrace(ctx context.Context, prompt string) *Trace[T] {
	return newTraceWithTracer[T](ctx, m, prompt)
}

func (m *mockTracer[T]) RecordTrace(trace *Trace[T]) {
	*m.traces = append(*m.traces, trace)
}

func TestWithTracer(t *testing.T) {
	ctx := context.Background()
	var traces []*Trace[string]
	tracer := &mockTracer[string]{traces: &traces}

	if got := TracerFromContext[string](WithTracer[string](ctx, tracer)); got != tracer {
		t.Errorf("retrieved tracer: got = %v, wanted = %v", got, tracer)
	}
	if got := TracerFromContext[string](ctx); got == nil {
		t.Error("retrieved tracer from empty context: got = nil, wanted = default tracer")
	}
	// Tracers are keyed by result type.
	if _, ok := TracerFromContext[int](WithTracer[string](ctx, tracer)).(*mockTracer[int]); ok {
		t.Error("tracer for int: got = string tracer, wanted = default tracer")
	}
}

func TestAutoRecordTrace(t *testing.T) {
	var traces []*Trace[string]
	ctx := WithTracer[string](context.Background(), &mockTracer[string]{traces: &traces})

	trace := StartTrace[string](ctx, randomString())
	trace.StartToolCall("tc1", "get_github_structure", nil).Complete(`["a.txt"]`, nil)

	if len(traces) != 0 {
		t.Errorf("traces before completion: got = %d, wanted = 0", len(traces))
	}

	trace.Complete("done", nil)

	if len(traces) != 1 || traces[0] != trace {
		t.Fatalf("traces after completion: got = %v, wanted = [%v]", traces, trace)
	}
	if len(trace.ToolCalls) != 1 {
		t.Errorf("tool calls: got = %d, wanted = 1", len(trace.ToolCalls))
	}
}

func TestByCode(t *testing.T) {
	var (
		mu       sync.Mutex
		captured []*Trace[string]
	)
	callback := func(trace *Trace[string]) {
		mu.Lock()
		defer mu.Unlock()
		captured = append(captured, trace)
	}

	tracer := ByCode[string](callback, nil, callback)
	prompt := randomString()
	trace := tracer.NewTrace(context.Background(), prompt)
	trace.Complete("result", nil)

	if len(captured) != 2 {
		t.Fatalf("callback invocations: got = %d, wanted = 2", len(captured))
	}
	for i, c := range captured {
		if c != trace {
			t.Errorf("callback %d: got = %v, wanted = %v", i, c, trace)
		}
	}
	if trace.InputPrompt != prompt {
		t.Errorf("prompt: got = %q, wanted = %q", trace.InputPrompt, prompt)
	}
}

func TestByCodeParallel(t *testing.T) {
	started := make(chan struct{}, 2)
	proceed := make(chan struct{})
	blocking := func(*Trace[string]) {
		started <- struct{}{}
		<-proceed
	}

	trace := ByCode[string](blocking, blocking).NewTrace(context.Background(), "p")
	done := make(chan struct{})
	go func() {
		trace.Complete("r", nil)
		close(done)
	}()

	timeout := time.After(time.Second)
	for range 2 {
		select {
		case <-started:
		case <-timeout:
			t.Fatal("callbacks did not run concurrently")
		}
	}
	close(proceed)
	<-done
}

func TestExecutionContext(t *testing.T) {
	execCtx := ExecutionContext{Repository: "octo/demo", Model: "grok-beta", TurnNumber: 2}
	ctx := WithExecutionContext(context.Background(), execCtx)

	if got := GetExecutionContext(ctx); got != execCtx {
		t.Errorf("GetExecutionContext(): got = %+v, wanted = %+v", got, execCtx)
	}
	if got := GetExecutionContext(context.Background()); got != (ExecutionContext{}) {
		t.Errorf("GetExecutionContext(empty): got = %+v, wanted zero", got)
	}

	var traces []*Trace[string]
	trace := StartTrace[string](WithTracer[string](ctx, &mockTracer[string]{traces: &traces}), "p")
	if trace.ExecContext != execCtx {
		t.Errorf("trace ExecContext: got = %+v, wanted = %+v", trace.ExecContext, execCtx)
	}
}

func TestEnrichAttributes(t *testing.T) {
	base := []attribute.KeyValue{attribute.String("model", "grok-beta")}

	got := ExecutionContext{Repository: "octo/demo", TurnNumber: 3}.EnrichAttributes(base)
	want := []attribute.KeyValue{
		attribute.String("model", "grok-beta"),
		attribute.String("repository", "octo/demo"),
		attribute.Int("turn", 3),
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b attribute.KeyValue) bool { return a == b })); diff != "" {
		t.Errorf("EnrichAttributes() (-want, +got):\n%s", diff)
	}
	if len(base) != 1 {
		t.Errorf("base attributes modified: got = %v", base)
	}
}

func TestBadToolCall(t *testing.T) {
	var traces []*Trace[string]
	trace := (&mockTracer[string]{traces: &traces}).NewTrace(context.Background(), "p")

	trace.BadToolCall("tc1", "no_such_tool", nil, errors.New("unknown tool"))

	if len(trace.ToolCalls) != 1 || trace.ToolCalls[0].Error == nil {
		t.Fatalf("tool calls: got = %+v, wanted one failed call", trace.ToolCalls)
	}
}

func TestTraceString(t *testing.T) {
	var traces []*Trace[string]
	ctx := WithExecutionContext(context.Background(), ExecutionContext{Repository: "octo/demo"})
	trace := (&mockTracer[string]{traces: &traces}).NewTrace(ctx, "review it")
	trace.StartToolCall("tc1", "fetch_github_file_content", map[string]any{
		"file_path":  "go.mod",
		"github_url": "https://github.com/octo/demo",
	}).Complete(strings.Repeat("x", 500), nil)
	trace.Complete("looks fine", nil)

	s := trace.String()
	for _, want := range []string{
		"Repository: octo/demo",
		`Prompt: "review it"`,
		"Tool Calls (1):",
		"fetch_github_file_content (ID: tc1)",
		"file_path: go.mod",
		"...",
		"Result: looks fine",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
