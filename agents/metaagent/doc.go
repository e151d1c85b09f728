/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package metaagent builds an agent from a model name, prompts, and a tool
// provider, hiding which SDK runs it.
//
// The agent is generic over three type parameters:
//   - Req: the request type, bound into the user prompt
//   - Resp: the structured response returned through submit_result
//   - CB: the callbacks the tool provider turns into tools
//
// Models are routed by prefix. claude-* runs on the Anthropic SDK, gemini-*
// on google.golang.org/genai, and grok-* on openai-go against xAI:
//
//	type Callbacks = toolcall.RepositoryTools[toolcall.EmptyTools]
//
//	agent, err := metaagent.New[*Request, *Review, Callbacks](ctx, backend, "grok-beta",
//		metaagent.Config[*Review, Callbacks]{
//			Name:               "Github Analyst",
//			SystemInstructions: system,
//			UserPrompt:         user,
//			Tools: toolcall.NewRepositoryToolsProvider[*Review, toolcall.EmptyTools](
//				toolcall.NewEmptyToolsProvider[*Review]()),
//		})
//	review, err := agent.Execute(ctx, req, callbacks)
package metaagent
