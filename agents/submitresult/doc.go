/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package submitresult builds the tool an agent calls to hand in its final,
// structured answer.
//
// The payload schema is reflected from the response type, and a struct tag
// on a blank field configures the tool:
//
//	type Review struct {
//		_ struct{} `submitresult:"name=submit_review,payload=review"`
//		Summary string `json:"summary" jsonschema:"required"`
//	}
//
//	tool, err := submitresult.ToolForResponse[*Review]()
//
// Responses implementing Validator are checked before they are accepted.
package submitresult
