/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package toolcall_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/toolcall"
	"github.com/santosh898/git-ranker/agents/toolcall/callbacks"
)

var errInvalid = errors.New("invalid input")

func repositoryTools(t *testing.T, cb callbacks.RepositoryCallbacks) map[string]toolcall.Tool[string] {
	t.Helper()
	provider := toolcall.NewRepositoryToolsProvider[string](toolcall.NewEmptyToolsProvider[string]())
	return provider.Tools(toolcall.NewRepositoryTools(toolcall.EmptyTools{}, cb))
}

func fakeCallbacks() callbacks.RepositoryCallbacks {
	return callbacks.RepositoryCallbacks{
		GetStructure: func(_ context.Context, url string) (callbacks.Structure, error) {
			switch url {
			case "https://github.com/octo/demo":
				return callbacks.Structure{Paths: `["README.md","src/main.go"]`}, nil
			case "https://github.com/octo/partial":
				return callbacks.Structure{Paths: `["a.txt"]`, Skipped: []string{"vendor: 403 Forbidden"}}, nil
			}
			return callbacks.Structure{}, errInvalid
		},
		FetchFileContent: func(_ context.Context, githubURL, filePath string) (string, error) {
			switch filePath {
			case "go.mod":
				return "module demo\n", nil
			case "missing.txt":
				return "", nil
			}
			return "", errInvalid
		},
	}
}

func call(name string, args map[string]any) toolcall.ToolCall {
	return toolcall.ToolCall{ID: "call-1", Name: name, Args: args}
}

func TestRepositoryToolsRegistered(t *testing.T) {
	tools := repositoryTools(t, fakeCallbacks())

	for _, name := range []string{toolcall.GetStructureToolName, toolcall.FetchFileContentToolName} {
		tool, ok := tools[name]
		if !ok {
			t.Errorf("tool %q: not registered", name)
			continue
		}
		if tool.Def.Name != name {
			t.Errorf("tool %q definition name: got = %q", name, tool.Def.Name)
		}
	}

	if diff := cmp.Diff([]string{"url"}, tools[toolcall.GetStructureToolName].Def.Required()); diff != "" {
		t.Errorf("structure required (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"github_url", "file_path"}, tools[toolcall.FetchFileContentToolName].Def.Required()); diff != "" {
		t.Errorf("content required (-want, +got):\n%s", diff)
	}
}

func TestRepositoryToolsPartialCallbacks(t *testing.T) {
	cb := fakeCallbacks()
	cb.FetchFileContent = nil

	tools := repositoryTools(t, cb)
	if _, ok := tools[toolcall.FetchFileContentToolName]; ok {
		t.Error("fetch_github_file_content registered without a callback")
	}
	if _, ok := tools[toolcall.GetStructureToolName]; !ok {
		t.Error("get_github_structure not registered")
	}
}

func TestGetStructureTool(t *testing.T) {
	tools := repositoryTools(t, fakeCallbacks())
	handler := tools[toolcall.GetStructureToolName].Handler

	tests := []struct {
		name string
		args map[string]any
		want map[string]any
	}{{
		name: "complete",
		args: map[string]any{"url": "https://github.com/octo/demo", "reasoning": "start here"},
		want: map[string]any{"url": "https://github.com/octo/demo", "structure": `["README.md","src/main.go"]`},
	}, {
		name: "partial",
		args: map[string]any{"url": " https://github.com/octo/partial "},
		want: map[string]any{
			"url":       "https://github.com/octo/partial",
			"structure": `["a.txt"]`,
			"skipped":   []string{"vendor: 403 Forbidden"},
		},
	}, {
		name: "callback error",
		args: map[string]any{"url": "https://example.com/x"},
		want: map[string]any{"url": "https://example.com/x", "error": "invalid input"},
	}, {
		name: "missing url",
		args: map[string]any{},
		want: map[string]any{"error": "url parameter is required"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := agenttrace.StartTrace[string](context.Background(), "test")
			got := handler(context.Background(), call(toolcall.GetStructureToolName, tt.args), trace, new(string))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result (-want, +got):\n%s", diff)
			}
			if len(trace.ToolCalls) != 1 {
				t.Errorf("trace tool calls: got = %d, wanted = 1", len(trace.ToolCalls))
			}
		})
	}
}

func TestFetchFileContentTool(t *testing.T) {
	tools := repositoryTools(t, fakeCallbacks())
	handler := tools[toolcall.FetchFileContentToolName].Handler
	repo := "https://github.com/octo/demo"

	tests := []struct {
		name    string
		args    map[string]any
		want    map[string]any
		wantErr bool
	}{{
		name: "file",
		args: map[string]any{"github_url": repo, "file_path": "go.mod"},
		want: map[string]any{"file_path": "go.mod", "content": "module demo\n", "size": 12},
	}, {
		name: "upstream failure is empty content",
		args: map[string]any{"github_url": repo, "file_path": "missing.txt"},
		want: map[string]any{"file_path": "missing.txt", "content": "", "size": 0},
	}, {
		name:    "callback error",
		args:    map[string]any{"github_url": repo, "file_path": "src"},
		want:    map[string]any{"github_url": repo, "file_path": "src", "error": "invalid input"},
		wantErr: true,
	}, {
		name:    "blank path",
		args:    map[string]any{"github_url": repo, "file_path": "  "},
		want:    map[string]any{"error": "file_path parameter must not be empty"},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := agenttrace.StartTrace[string](context.Background(), "test")
			got := handler(context.Background(), call(toolcall.FetchFileContentToolName, tt.args), trace, new(string))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result (-want, +got):\n%s", diff)
			}
			if len(trace.ToolCalls) != 1 {
				t.Fatalf("trace tool calls: got = %d, wanted = 1", len(trace.ToolCalls))
			}
			if gotErr := trace.ToolCalls[0].Error != nil; gotErr != tt.wantErr {
				t.Errorf("trace error: got = %v, wanted error = %v", trace.ToolCalls[0].Error, tt.wantErr)
			}
		})
	}
}
