/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package googleexecutor runs tool-calling conversations against Gemini
models through google.golang.org/genai chats, on either the Gemini API or
Vertex AI.

Each turn sends the pending parts (the bound prompt first, then function
responses), records token usage, and dispatches function calls to the
matching googletool.Metadata handler. The conversation ends when a handler
sets the response or the model replies with JSON text:

	exec, err := googleexecutor.New[*analyst.Request, *analyst.Review](client, prompt,
		googleexecutor.WithModel[*analyst.Request, *analyst.Review]("gemini-2.5-pro"),
		googleexecutor.WithSubmitResultProvider[*analyst.Request, *analyst.Review](submitresult.ToolForResponse[*analyst.Review]),
	)
	review, err := exec.Execute(ctx, req, googletool.Map(tools))

A malformed function call is answered with the list of available functions
and the loop continues. Unknown functions get an error response and are
recorded on the trace with Trace.BadToolCall.
*/
package googleexecutor
