/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package openaiexecutor runs tool-calling conversations against OpenAI
// compatible chat completions APIs. The defaults target xAI's Grok.
//
//	client := openai.NewClient(
//		option.WithAPIKey(apiKey),
//		option.WithBaseURL(openaiexecutor.DefaultBaseURL),
//	)
//	exec, err := openaiexecutor.New[*analyst.Request, *analyst.Review](client, prompt,
//		openaiexecutor.WithSystemInstructions[*analyst.Request, *analyst.Review](system),
//	)
//	review, err := exec.Execute(ctx, req, openaitool.Map(tools))
//
// Completion requests that fail with 429 or 5xx are retried with backoff.
// The conversation ends when a tool sets the response, the model replies
// with JSON text, or the turn limit is reached.
package openaiexecutor
