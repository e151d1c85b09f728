/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/toolcall/params"
)

// ToolCall is a provider-independent representation of a tool call.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// Definition describes a tool's schema (name, description, parameters).
type Definition struct {
	Name        string
	Description string
	Parameters  []Parameter
}

// Parameter describes a single tool parameter.
type Parameter struct {
	Name        string
	Type        string // "string", "integer", "boolean", "number", "object"
	Description string
	Required    bool

	// Schema, when set, fully describes the parameter and takes precedence
	// over Type. Used for structured payloads.
	Schema *jsonschema.Schema
}

// Tool defines a tool once with a single handler that works with any provider.
// A handler that sets *result to a non-zero value ends the conversation.
type Tool[Resp any] struct {
	Def     Definition
	Handler func(ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], result *Resp) map[string]any
}

// badCallRecorder is the part of a trace that Param reports to.
type badCallRecorder interface {
	BadToolCall(string, string, map[string]any, error)
}

// Param extracts a required parameter from the tool call args.
// On error, records a bad tool call on the trace and returns an error response.
func Param[T any](call ToolCall, trace badCallRecorder, name string) (T, map[string]any) {
	v, err := params.Extract[T](call.Args, name)
	if err != nil {
		trace.BadToolCall(call.ID, call.Name, call.Args, fmt.Errorf("missing %s parameter", name))
		return v, params.Error("%s", err)
	}
	return v, nil
}

// StringParam is Param for non-blank strings, trimmed of surrounding space.
func StringParam(call ToolCall, trace badCallRecorder, name string) (string, map[string]any) {
	v, err := params.ExtractString(call.Args, name)
	if err != nil {
		trace.BadToolCall(call.ID, call.Name, call.Args, err)
		return "", params.Error("%s", err)
	}
	return v, nil
}

// OptionalParam extracts an optional parameter from the tool call args.
func OptionalParam[T any](call ToolCall, name string, defaultValue T) (T, map[string]any) {
	v, err := params.ExtractOptional[T](call.Args, name, defaultValue)
	if err != nil {
		return v, params.Error("%s", err)
	}
	return v, nil
}
