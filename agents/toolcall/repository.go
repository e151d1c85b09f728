/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

import (
	"context"

	"github.com/chainguard-dev/clog"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/toolcall/callbacks"
	"github.com/santosh898/git-ranker/agents/toolcall/params"
)

// Names of the repository tools.
const (
	GetStructureToolName     = "get_github_structure"
	FetchFileContentToolName = "fetch_github_file_content"
)

// RepositoryTools wraps a base tools type and adds repository callbacks.
type RepositoryTools[T any] struct {
	base T
	callbacks.RepositoryCallbacks
}

// NewRepositoryTools creates a RepositoryTools wrapping the given base tools.
func NewRepositoryTools[T any](base T, cb callbacks.RepositoryCallbacks) RepositoryTools[T] {
	return RepositoryTools[T]{base: base, RepositoryCallbacks: cb}
}

type repositoryToolsProvider[Resp, T any] struct {
	base ToolProvider[Resp, T]
}

var _ ToolProvider[any, RepositoryTools[any]] = (*repositoryToolsProvider[any, any])(nil)

// NewRepositoryToolsProvider creates a provider that adds the GitHub
// repository tools on top of the base provider's tools. A tool is only added
// when its callback is set.
func NewRepositoryToolsProvider[Resp, T any](base ToolProvider[Resp, T]) ToolProvider[Resp, RepositoryTools[T]] {
	return repositoryToolsProvider[Resp, T]{base: base}
}

var reasoningParam = Parameter{
	Name:        "reasoning",
	Type:        "string",
	Description: "Explain what you expect to learn from this call.",
}

func (p repositoryToolsProvider[Resp, T]) Tools(cb RepositoryTools[T]) map[string]Tool[Resp] {
	tools := p.base.Tools(cb.base)

	if cb.HasGetStructure() {
		tools[GetStructureToolName] = Tool[Resp]{
			Def: Definition{
				Name: GetStructureToolName,
				Description: "Fetch the structure of a GitHub repository. " +
					"Returns every file path in the repository as a JSON array. " +
					"Directories that could not be listed are reported under \"skipped\".",
				Parameters: []Parameter{
					reasoningParam,
					{Name: "url", Type: "string", Description: "The URL of the GitHub repository, e.g. https://github.com/owner/repo", Required: true},
				},
			},
			Handler: structureHandler[Resp](cb.GetStructure),
		}
	}

	if cb.HasFetchFileContent() {
		tools[FetchFileContentToolName] = Tool[Resp]{
			Def: Definition{
				Name: FetchFileContentToolName,
				Description: "Fetch the content of a file in a GitHub repository. " +
					"Content is empty when the file could not be fetched.",
				Parameters: []Parameter{
					reasoningParam,
					{Name: "github_url", Type: "string", Description: "The URL of the GitHub repository.", Required: true},
					{Name: "file_path", Type: "string", Description: "The path to the file in the repository, as returned by get_github_structure.", Required: true},
				},
			},
			Handler: fileContentHandler[Resp](cb.FetchFileContent),
		}
	}

	return tools
}

func structureHandler[Resp any](getStructure func(context.Context, string) (callbacks.Structure, error)) func(context.Context, ToolCall, *agenttrace.Trace[Resp], *Resp) map[string]any {
	return func(ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], _ *Resp) map[string]any {
		url, errResp := StringParam(call, trace, "url")
		if errResp != nil {
			return errResp
		}
		reasoning, _ := OptionalParam(call, "reasoning", "")

		clog.FromContext(ctx).With("url", url).
			With("reasoning", reasoning).
			Info("Fetching repository structure")

		tc := trace.StartToolCall(call.ID, call.Name, map[string]any{"url": url})

		structure, err := getStructure(ctx, url)
		if err != nil {
			output := params.ErrorWithContext(err, map[string]any{"url": url})
			tc.Complete(output, err)
			return output
		}

		output := map[string]any{
			"url":       url,
			"structure": structure.Paths,
		}
		if len(structure.Skipped) > 0 {
			output["skipped"] = structure.Skipped
		}
		tc.Complete(output, nil)
		return output
	}
}

func fileContentHandler[Resp any](fetch func(context.Context, string, string) (string, error)) func(context.Context, ToolCall, *agenttrace.Trace[Resp], *Resp) map[string]any {
	return func(ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], _ *Resp) map[string]any {
		githubURL, errResp := StringParam(call, trace, "github_url")
		if errResp != nil {
			return errResp
		}
		filePath, errResp := StringParam(call, trace, "file_path")
		if errResp != nil {
			return errResp
		}
		reasoning, _ := OptionalParam(call, "reasoning", "")

		clog.FromContext(ctx).With("file_path", filePath).
			With("reasoning", reasoning).
			Info("Fetching file content")

		args := map[string]any{"github_url": githubURL, "file_path": filePath}
		tc := trace.StartToolCall(call.ID, call.Name, args)

		content, err := fetch(ctx, githubURL, filePath)
		if err != nil {
			output := params.ErrorWithContext(err, args)
			tc.Complete(output, err)
			return output
		}

		output := map[string]any{
			"file_path": filePath,
			"content":   content,
			"size":      len(content),
		}
		tc.Complete(output, nil)
		return output
	}
}
