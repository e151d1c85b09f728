/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"context"
	"encoding/json"

	"github.com/chainguard-dev/clog"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/toolcall"
	"github.com/santosh898/git-ranker/agents/toolcall/params"
)

// Validator is implemented by responses that can check their own contents.
// A submission that fails validation is rejected back to the model with the
// error, so it can correct the payload and submit again.
type Validator interface {
	Validate() error
}

// Tool constructs the submit_result tool. Its payload parameter carries the
// JSON schema reflected from Response; a successful call sets the result and
// ends the conversation.
func Tool[Response any](opts Options[Response]) (toolcall.Tool[Response], error) {
	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return toolcall.Tool[Response]{}, err
	}

	handler := func(ctx context.Context, call toolcall.ToolCall, trace *agenttrace.Trace[Response], result *Response) map[string]any {
		reasoning, errResp := toolcall.Param[string](call, trace, "reasoning")
		if errResp != nil {
			return errResp
		}
		payloadRaw, errResp := toolcall.Param[map[string]any](call, trace, opts.PayloadFieldName)
		if errResp != nil {
			return errResp
		}

		clog.FromContext(ctx).With("reasoning", reasoning).Info("Submitting result")

		tc := trace.StartToolCall(call.ID, call.Name, call.Args)

		payloadJSON, err := json.Marshal(payloadRaw)
		if err != nil {
			tc.Complete(nil, err)
			return params.Error("failed to marshal payload: %v", err)
		}

		dest := newResponse[Response]()
		if err := json.Unmarshal(payloadJSON, dest); err != nil {
			tc.Complete(nil, err)
			return params.Error("failed to unmarshal payload: %v", err)
		}
		if v, ok := dest.(Validator); ok {
			if err := v.Validate(); err != nil {
				output := params.Error("invalid %s: %v. Fix the payload and call %s again.", opts.PayloadFieldName, err, opts.ToolName)
				tc.Complete(output, err)
				return output
			}
		}

		*result = fromDecoded[Response](dest)

		success := map[string]any{
			"success": true,
			"message": opts.SuccessMessage,
		}
		tc.Complete(success, nil)
		return success
	}

	return toolcall.Tool[Response]{
		Def: toolcall.Definition{
			Name:        opts.ToolName,
			Description: opts.Description,
			Parameters: []toolcall.Parameter{{
				Name:        "reasoning",
				Type:        "string",
				Description: "Explain why you are confident this result is complete and accurate.",
				Required:    true,
			}, {
				Name:        opts.PayloadFieldName,
				Type:        "object",
				Description: opts.PayloadDescription,
				Required:    true,
				Schema:      opts.schemaForResponse(),
			}},
		},
		Handler: handler,
	}, nil
}

// ToolForResponse constructs the submit_result tool using metadata inferred
// from the response type annotations.
func ToolForResponse[Response any]() (toolcall.Tool[Response], error) {
	return Tool(OptionsForResponse[Response]())
}
