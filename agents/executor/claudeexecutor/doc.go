/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package claudeexecutor runs tool-calling conversations against Anthropic
// Claude models, directly or through Vertex AI.
//
// The executor binds the request into its prompt, streams each model turn,
// runs the requested tools, and stops when a tool sets the response (see
// WithSubmitResultProvider) or the model replies with JSON text.
//
//	client := anthropic.NewClient(vertex.WithGoogleAuth(ctx, region, projectID))
//	exec, err := claudeexecutor.New[*analyst.Request, *analyst.Review](client, prompt,
//		claudeexecutor.WithSystemInstructions[*analyst.Request, *analyst.Review](system),
//		claudeexecutor.WithSubmitResultProvider[*analyst.Request, *analyst.Review](submitresult.ToolForResponse[*analyst.Review]),
//	)
//	review, err := exec.Execute(ctx, req, claudetool.Map(tools))
//
// With WithThinking, reasoning blocks are recorded on the trace and the
// temperature is forced to 1.
package claudeexecutor
