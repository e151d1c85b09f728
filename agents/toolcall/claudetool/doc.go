/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package claudetool adapts toolcall tools to the Anthropic Messages API.
//
// FromTool turns a toolcall.Tool into an anthropic.ToolParam plus a handler
// that decodes the tool_use input JSON before invoking the tool:
//
//	tools := claudetool.Map(provider.Tools(cb))
//	review, err := exec.Execute(ctx, request, tools)
package claudetool
