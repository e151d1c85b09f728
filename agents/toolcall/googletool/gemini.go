/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package googletool

import (
	"context"
	"fmt"

	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/toolcall"
	"google.golang.org/genai"
)

// Metadata describes a tool available to the Google AI agent.
type Metadata[Response any] struct {
	// Definition is the Google AI tool definition.
	Definition *genai.FunctionDeclaration

	// Handler is the function that processes tool calls.
	// If the handler sets *result to a non-zero value, the executor will immediately exit with that response.
	Handler func(ctx context.Context, call *genai.FunctionCall, trace *agenttrace.Trace[Response], result *Response) *genai.FunctionResponse
}

// FromTool converts a provider-independent tool into Gemini metadata.
func FromTool[Response any](tool toolcall.Tool[Response]) Metadata[Response] {
	properties := make(map[string]*genai.Schema, len(tool.Def.Parameters))
	ordering := make([]string, 0, len(tool.Def.Parameters))
	for _, p := range tool.Def.Parameters {
		properties[p.Name] = parameterSchema(p)
		ordering = append(ordering, p.Name)
	}

	return Metadata[Response]{
		Definition: &genai.FunctionDeclaration{
			Name:        tool.Def.Name,
			Description: tool.Def.Description,
			Parameters: &genai.Schema{
				Type:             genai.TypeObject,
				Properties:       properties,
				PropertyOrdering: ordering,
				Required:         tool.Def.Required(),
			},
		},
		Handler: func(ctx context.Context, call *genai.FunctionCall, trace *agenttrace.Trace[Response], result *Response) *genai.FunctionResponse {
			args := call.Args
			if args == nil {
				args = map[string]any{}
			}
			output := tool.Handler(ctx, toolcall.ToolCall{
				ID:   call.ID,
				Name: call.Name,
				Args: args,
			}, trace, result)
			if output == nil {
				output = map[string]any{}
			}
			return &genai.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: output,
			}
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

func parameterSchema(p toolcall.Parameter) *genai.Schema {
	if p.Schema != nil {
		s := FromJSONSchema(p.Schema)
		if p.Description != "" {
			s.Description = p.Description
		}
		return s
	}
	return &genai.Schema{
		Type:        mapSchemaType(p.Type),
		Description: p.Description,
	}
}

// Error creates a FunctionResponse with an error message
func Error(call *genai.FunctionCall, format string, args ...any) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   call.ID,
		Name: call.Name,
		Response: map[string]any{
			"error": fmt.Sprintf(format, args...),
		},
	}
}
