/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"errors"
	"strings"

	"github.com/santosh898/git-ranker/agents/executor/retry"
	"google.golang.org/genai"
)

// transientMarkers identify retryable failures that arrive as plain errors
// rather than as a genai.APIError, such as gRPC status text from Vertex AI.
var transientMarkers = []string{
	"RESOURCE_EXHAUSTED",
	"UNAVAILABLE",
	"Resource exhausted",
	"quota exceeded",
	"rate limit",
	"Overloaded",
}

func isRetryableVertexError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return retry.RetryableStatus(apiErr.Code)
	}

	msg := err.Error()
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
