/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package openaitool

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/openai/openai-go"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/toolcall"
	"github.com/santosh898/git-ranker/agents/toolcall/params"
)

// Metadata describes a tool available to an OpenAI-compatible chat agent.
type Metadata[Response any] struct {
	// Definition is the function tool sent with each completion request.
	Definition openai.ChatCompletionToolParam

	// Handler processes one tool call from an assistant message. If it sets
	// *result to a non-zero value, the executor exits with that response.
	Handler func(ctx context.Context, call openai.ChatCompletionMessageToolCall, trace *agenttrace.Trace[Response], result *Response) map[string]any
}

// FromTool converts a provider-independent tool into OpenAI function metadata.
func FromTool[Response any](tool toolcall.Tool[Response]) Metadata[Response] {
	return Metadata[Response]{
		Definition: openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        tool.Def.Name,
				Description: openai.String(tool.Def.Description),
				Parameters:  openai.FunctionParameters(tool.Def.JSONSchema()),
			},
		},
		Handler: func(ctx context.Context, call openai.ChatCompletionMessageToolCall, trace *agenttrace.Trace[Response], result *Response) map[string]any {
			args := map[string]any{}
			if raw := call.Function.Arguments; raw != "" {
				if err := json.Unmarshal([]byte(raw), &args); err != nil {
					trace.BadToolCall(call.ID, call.Function.Name, map[string]any{"arguments": raw}, errors.New("failed to parse tool arguments"))
					return params.Error("Failed to parse tool arguments: %v", err)
				}
			}
			return tool.Handler(ctx, toolcall.ToolCall{
				ID:   call.ID,
				Name: call.Function.Name,
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
