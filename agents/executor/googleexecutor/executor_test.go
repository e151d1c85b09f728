/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/executor/googleexecutor"
	"github.com/santosh898/git-ranker/agents/executor/retry"
	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/toolcall"
	"github.com/santosh898/git-ranker/agents/toolcall/googletool"
	"google.golang.org/genai"
)

type question struct {
	Text string
}

func (q *question) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindXML("question", struct {
		XMLName struct{} `xml:"question"`
		Content string   `xml:",chardata"`
	}{Content: q.Text})
}

type answer struct {
	Answer string `json:"answer"`
}

// fakeGemini replays canned generateContent replies in order and records
// each request body.
type fakeGemini struct {
	mu       sync.Mutex
	replies  []string
	requests []string
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !strings.HasSuffix(r.URL.Path, ":generateContent") {
		http.Error(w, "unexpected path "+r.URL.Path, http.StatusNotFound)
		return
	}
	body, _ := io.ReadAll(r.Body)
	f.requests = append(f.requests, string(body))
	if len(f.requests) > len(f.replies) {
		http.Error(w, "no more replies", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, f.replies[len(f.requests)-1])
}

func functionCallReply(name string, args map[string]any) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{
				"role":  "model",
				"parts": []any{map[string]any{"functionCall": map[string]any{"name": name, "args": args}}},
			},
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 10, "candidatesTokenCount": 5},
	})
	return string(b)
}

func textReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{"role": "model", "parts": []any{map[string]any{"text": text}}},
		}},
	})
	return string(b)
}

func newExecutor(t *testing.T, fake *fakeGemini, opts ...googleexecutor.Option[*question, *answer]) googleexecutor.Interface[*question, *answer] {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	if err != nil {
		t.Fatalf("genai.NewClient() error = %v", err)
	}

	opts = append(opts, googleexecutor.WithRetryConfig[*question, *answer](retry.RetryConfig{MaxRetries: 0, BaseBackoff: time.Millisecond}))
	exec, err := googleexecutor.New(client, promptbuilder.MustNewPrompt("Answer {{question}}"), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return exec
}

func lookupTool(calls *[]map[string]any) map[string]googletool.Metadata[*answer] {
	return map[string]googletool.Metadata[*answer]{
		"lookup": {
			Definition: &genai.FunctionDeclaration{Name: "lookup", Description: "Look something up"},
			Handler: func(_ context.Context, call *genai.FunctionCall, _ *agenttrace.Trace[*answer], _ **answer) *genai.FunctionResponse {
				*calls = append(*calls, call.Args)
				return &genai.FunctionResponse{ID: call.ID, Name: call.Name, Response: map[string]any{"value": "forty-two"}}
			},
		},
	}
}

func TestExecuteToolThenText(t *testing.T) {
	fake := &fakeGemini{replies: []string{
		functionCallReply("lookup", map[string]any{"q": "meaning"}),
		textReply("```json\n{\"answer\": \"42\"}\n```"),
	}}
	exec := newExecutor(t, fake)

	var calls []map[string]any
	got, err := exec.Execute(context.Background(), &question{Text: "life"}, lookupTool(&calls))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got == nil || got.Answer != "42" {
		t.Errorf("Execute() = %+v, want answer 42", got)
	}
	if len(calls) != 1 || calls[0]["q"] != "meaning" {
		t.Errorf("lookup calls = %v, want one with q=meaning", calls)
	}
	if len(fake.requests) != 2 {
		t.Fatalf("requests = %d, want 2", len(fake.requests))
	}
	if !strings.Contains(fake.requests[0], "life") {
		t.Errorf("first request missing bound prompt: %s", fake.requests[0])
	}
	if !strings.Contains(fake.requests[1], "functionResponse") || !strings.Contains(fake.requests[1], "forty-two") {
		t.Errorf("second request missing tool response: %s", fake.requests[1])
	}
}

func TestExecuteSubmitResult(t *testing.T) {
	fake := &fakeGemini{replies: []string{
		functionCallReply("submit_result", map[string]any{"answer": "7"}),
	}}
	submit := func() (toolcall.Tool[*answer], error) {
		return toolcall.Tool[*answer]{
			Def: toolcall.Definition{
				Name:       "submit_result",
				Parameters: []toolcall.Parameter{{Name: "answer", Type: "string", Required: true}},
			},
			Handler: func(_ context.Context, call toolcall.ToolCall, _ *agenttrace.Trace[*answer], result **answer) map[string]any {
				*result = &answer{Answer: fmt.Sprint(call.Args["answer"])}
				return map[string]any{"success": true}
			},
		}, nil
	}
	exec := newExecutor(t, fake, googleexecutor.WithSubmitResultProvider[*question, *answer](submit))

	got, err := exec.Execute(context.Background(), &question{Text: "seven"}, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got == nil || got.Answer != "7" {
		t.Errorf("Execute() = %+v, want answer 7", got)
	}
	if len(fake.requests) != 1 {
		t.Errorf("requests = %d, want 1", len(fake.requests))
	}
	if !strings.Contains(fake.requests[0], "submit_result") {
		t.Errorf("request does not declare submit_result: %s", fake.requests[0])
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	fake := &fakeGemini{replies: []string{
		functionCallReply("nope", nil),
		textReply(`{"answer": "done"}`),
	}}
	exec := newExecutor(t, fake)

	var traces []*agenttrace.Trace[*answer]
	ctx := agenttrace.WithTracer(context.Background(), agenttrace.ByCode(func(tr *agenttrace.Trace[*answer]) {
		traces = append(traces, tr)
	}))

	got, err := exec.Execute(ctx, &question{Text: "x"}, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.Answer != "done" {
		t.Errorf("Answer = %q, want done", got.Answer)
	}
	if !strings.Contains(fake.requests[1], "Unknown function: nope") {
		t.Errorf("second request missing unknown tool error: %s", fake.requests[1])
	}
	if len(traces) != 1 || len(traces[0].ToolCalls) != 1 || traces[0].ToolCalls[0].Error == nil {
		t.Errorf("unknown tool not recorded as a bad tool call")
	}
}

func TestExecuteUnparseableText(t *testing.T) {
	fake := &fakeGemini{replies: []string{textReply("I cannot answer that.")}}
	exec := newExecutor(t, fake)

	if _, err := exec.Execute(context.Background(), &question{Text: "x"}, nil); err == nil {
		t.Error("Execute() with non-JSON text succeeded")
	}
}
