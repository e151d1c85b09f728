/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package metaagent

import (
	"net/http"

	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/toolcall"
)

// Config defines an agent.
//   - Resp is the structured response type returned by the agent.
//   - CB is the type providing all tool callbacks.
type Config[Resp, CB any] struct {
	// Name identifies the agent in logs.
	Name string

	// SystemInstructions is the system prompt that defines the agent's role.
	SystemInstructions *promptbuilder.Prompt

	// UserPrompt is the template the request is bound into.
	UserPrompt *promptbuilder.Prompt

	// Tools provides the tool definitions, built from the callbacks passed
	// to Execute.
	Tools toolcall.ToolProvider[Resp, CB]
}

// Backend holds the credentials for each model family. Only the family the
// chosen model belongs to needs to be filled in.
type Backend struct {
	// ProjectID and Region route Claude and Gemini through Vertex AI when no
	// API key is set for them.
	ProjectID string
	Region    string

	// AnthropicAPIKey selects the Anthropic API instead of Vertex AI.
	AnthropicAPIKey string

	// GeminiAPIKey selects the Gemini API instead of Vertex AI.
	GeminiAPIKey string

	// XAIAPIKey authenticates grok-* models against XAIBaseURL, which
	// defaults to openaiexecutor.DefaultBaseURL.
	XAIAPIKey  string
	XAIBaseURL string

	// HTTPClient, when set, is used by the Anthropic, Gemini API and xAI clients.
	HTTPClient *http.Client
}
