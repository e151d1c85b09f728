/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package analyst_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/evals"
	"github.com/santosh898/git-ranker/agents/metaagent"
	"github.com/santosh898/git-ranker/analyst"
	"github.com/santosh898/git-ranker/ghrepo"
	"github.com/stretchr/testify/require"
)

const demoURL = "https://github.com/octo/demo"

// fakeGitHub serves a two-file repository.
func fakeGitHub(t *testing.T) *ghrepo.Client {
	t.Helper()

	contents := map[string]string{
		"":       `[{"type":"file","name":"go.mod","path":"go.mod"},{"type":"dir","name":"cmd","path":"cmd"}]`,
		"cmd":    `[{"type":"file","name":"main.go","path":"cmd/main.go"}]`,
		"go.mod": `{"type":"file","name":"go.mod","path":"go.mod","encoding":"base64","content":"bW9kdWxlIGV4YW1wbGUuY29tL2RlbW8KCmdvIDEuMjUK"}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, found := strings.CutPrefix(r.URL.Path+"/", "/repos/octo/demo/contents/")
		path = strings.TrimSuffix(path, "/")
		body, ok := contents[path]
		w.Header().Set("Content-Type", "application/json")
		if !found || !ok {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"message":"Not Found"}`)
			return
		}
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := ghrepo.NewClient(context.Background(), ghrepo.Config{
		Token:      "test-pat",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err, "creating GitHub client")
	return client
}

// fakeXAI replays tool calls in order and records the requests it receives.
type fakeXAI struct {
	calls []map[string]any

	mu       sync.Mutex
	requests []map[string]any
}

func (f *fakeXAI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var req map[string]any
	body, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(body, &req)
	f.requests = append(f.requests, req)

	n := len(f.requests)
	if n > len(f.calls) {
		http.Error(w, `{"error":{"message":"no more replies"}}`, http.StatusBadRequest)
		return
	}
	call := f.calls[n-1]
	args, _ := json.Marshal(call["args"])
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl",
		"object":  "chat.completion",
		"created": 0,
		"model":   "grok-beta",
		"choices": []any{map[string]any{
			"index":         0,
			"finish_reason": "tool_calls",
			"message": map[string]any{
				"role":    "assistant",
				"content": nil,
				"tool_calls": []any{map[string]any{
					"id":       call["id"],
					"type":     "function",
					"function": map[string]any{"name": call["name"], "arguments": string(args)},
				}},
			},
		}},
	})
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

// lastMessage returns the content of the final message in request i.
func (f *fakeXAI) lastMessage(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs, _ := f.requests[i]["messages"].([]any)
	if len(msgs) == 0 {
		return ""
	}
	content, _ := msgs[len(msgs)-1].(map[string]any)["content"].(string)
	return content
}

func newAnalyst(t *testing.T, xai *fakeXAI) *analyst.Analyst {
	t.Helper()
	srv := httptest.NewServer(xai)
	t.Cleanup(srv.Close)

	a, err := analyst.New(context.Background(), analyst.Options{
		Model:   "grok-beta",
		Backend: metaagent.Backend{XAIAPIKey: "xai-test", XAIBaseURL: srv.URL},
		GitHub:  fakeGitHub(t),
	})
	require.NoError(t, err, "creating analyst")
	return a
}

func submission(rating int) map[string]any {
	return map[string]any{
		"reasoning": "go.mod is the only manifest",
		"review": map[string]any{
			"summary": "A single module Go command.",
			"packages": []any{map[string]any{
				"name":    "example.com/demo",
				"path":    ".",
				"manager": "go modules",
				"rating":  rating,
				"concerns": []any{map[string]any{
					"category":  "organization",
					"complaint": "The module path is a placeholder",
					"proof":     "go.mod: module example.com/demo",
				}},
			}},
		},
	}
}

func TestReview(t *testing.T) {
	xai := &fakeXAI{calls: []map[string]any{{
		"id":   "c1",
		"name": "get_github_structure",
		"args": map[string]any{"url": demoURL, "reasoning": "learn the layout"},
	}, {
		"id":   "c2",
		"name": "fetch_github_file_content",
		"args": map[string]any{"github_url": demoURL, "file_path": "go.mod"},
	}, {
		"id":   "c3",
		"name": "submit_review",
		"args": submission(11),
	}, {
		"id":   "c4",
		"name": "submit_review",
		"args": submission(6),
	}}}
	a := newAnalyst(t, xai)

	observers := map[string]*evals.Collector{}
	tracer := evals.Tracer(func(name string) *evals.Collector {
		observers[name] = &evals.Collector{}
		return observers[name]
	}, analyst.Checks())
	ctx := agenttrace.WithTracer(context.Background(), tracer)

	got, err := a.Review(ctx, demoURL+"/tree/main")
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}

	want := &analyst.Review{
		Repository: "octo/demo",
		Summary:    "A single module Go command.",
		Packages: []analyst.PackageReview{{
			Name:    "example.com/demo",
			Path:    ".",
			Manager: "go modules",
			Rating:  6,
			Concerns: []analyst.Concern{{
				Category:  analyst.CategoryOrganization,
				Complaint: "The module path is a placeholder",
				Proof:     "go.mod: module example.com/demo",
			}},
		}},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(analyst.Review{})); diff != "" {
		t.Errorf("Review() mismatch (-want +got):\n%s", diff)
	}

	for name, c := range observers {
		if c.Total() != 1 || len(c.Failures()) != 0 {
			t.Errorf("check %s: evaluated %d traces, failures %v", name, c.Total(), c.Failures())
		}
	}

	if len(xai.requests) != 4 {
		t.Fatalf("model requests = %d, want 4", len(xai.requests))
	}

	tools, _ := xai.requests[0]["tools"].([]any)
	var names []string
	for _, tool := range tools {
		fn, _ := tool.(map[string]any)["function"].(map[string]any)
		names = append(names, fn["name"].(string))
	}
	if diff := cmp.Diff([]string{"fetch_github_file_content", "get_github_structure", "submit_review"}, names); diff != "" {
		t.Errorf("declared tools mismatch (-want +got):\n%s", diff)
	}

	if msg := xai.lastMessage(0); !strings.Contains(msg, "<url>https://github.com/octo/demo/tree/main</url>") {
		t.Errorf("user prompt = %q, want the bound request", msg)
	}
	if msg := xai.lastMessage(1); !strings.Contains(msg, "cmd/main.go") || !strings.Contains(msg, "go.mod") {
		t.Errorf("structure result = %q, want both files", msg)
	}
	if msg := xai.lastMessage(2); !strings.Contains(msg, `module example.com/demo`) {
		t.Errorf("file content result = %q, want the decoded go.mod", msg)
	}
	if msg := xai.lastMessage(3); !strings.Contains(msg, "rating 11 is outside 1 to 10") {
		t.Errorf("rejected submission result = %q, want the validation error", msg)
	}
}

func TestReviewInvalidURL(t *testing.T) {
	xai := &fakeXAI{}
	a := newAnalyst(t, xai)

	_, err := a.Review(context.Background(), "https://gitlab.com/octo/demo")
	if !errors.Is(err, ghrepo.ErrInvalidInput) {
		t.Errorf("Review() error = %v, want ErrInvalidInput", err)
	}
	if len(xai.requests) != 0 {
		t.Errorf("model requests = %d, want none", len(xai.requests))
	}
}

func TestReviewModelFailure(t *testing.T) {
	a := newAnalyst(t, &fakeXAI{})

	_, err := a.Review(context.Background(), demoURL)
	if err == nil || !strings.Contains(err.Error(), "reviewing octo/demo") {
		t.Errorf("Review() error = %v, want a wrapped model error", err)
	}
}

func TestNewRequiresGitHub(t *testing.T) {
	_, err := analyst.New(context.Background(), analyst.Options{
		Model:   "grok-beta",
		Backend: metaagent.Backend{XAIAPIKey: "xai-test"},
	})
	if err == nil {
		t.Error("New() without a GitHub client succeeded")
	}
}

func TestNewUnsupportedModel(t *testing.T) {
	_, err := analyst.New(context.Background(), analyst.Options{
		Model:  "llama-3",
		GitHub: &ghrepo.Client{},
	})
	if err == nil || !strings.Contains(err.Error(), "unsupported model") {
		t.Errorf("New() error = %v, want unsupported model", err)
	}
}
