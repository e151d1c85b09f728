/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package googletool adapts toolcall tools to Gemini function calling.
//
// FromTool builds a genai.FunctionDeclaration from a tool definition and
// wraps the handler so its result map becomes a genai.FunctionResponse.
// Structured parameters are translated with FromJSONSchema.
package googletool
