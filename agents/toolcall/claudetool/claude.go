/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudetool

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/toolcall"
	"github.com/santosh898/git-ranker/agents/toolcall/params"
)

// Metadata describes a tool available to the Claude agent.
type Metadata[Response any] struct {
	// Definition is the Anthropic tool definition.
	Definition anthropic.ToolParam

	// Handler processes tool use blocks. If it sets *result to a non-zero
	// value, the executor exits with that response.
	Handler func(ctx context.Context, toolUse anthropic.ToolUseBlock, trace *agenttrace.Trace[Response], result *Response) map[string]any
}

// FromTool converts a provider-independent tool into Claude metadata.
func FromTool[Response any](tool toolcall.Tool[Response]) Metadata[Response] {
	return Metadata[Response]{
		Definition: anthropic.ToolParam{
			Name:        tool.Def.Name,
			Description: anthropic.String(tool.Def.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: tool.Def.Properties(),
				Required:   tool.Def.Required(),
			},
		},
		Handler: func(ctx context.Context, toolUse anthropic.ToolUseBlock, trace *agenttrace.Trace[Response], result *Response) map[string]any {
			args := map[string]any{}
			if len(toolUse.Input) > 0 {
				if err := json.Unmarshal(toolUse.Input, &args); err != nil {
					trace.BadToolCall(toolUse.ID, toolUse.Name, map[string]any{"input": string(toolUse.Input)}, errors.New("failed to parse tool input"))
					return params.Error("Failed to parse tool input: %v", err)
				}
			}
			return tool.Handler(ctx, toolcall.ToolCall{
				ID:   toolUse.ID,
				Name: toolUse.Name,
				Args: args,
			}, trace, result)
		},
	}
}

// Map converts a set of tools, keeping their keys.
func Map[Response any](tools map[string]toolcall.Tool[Response]) map[string]Metadata[Response] {
	out := make(map[string]Metadata[Response], len(tools))
	for name, tool := range tools {
		out[name] = FromTool(tool)
	}
	return out
}

// Error creates an error response map for Claude tool calls.
func Error(format string, args ...any) map[string]any {
	return params.Error(format, args...)
}
