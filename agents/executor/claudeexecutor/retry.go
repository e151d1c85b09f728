/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/santosh898/git-ranker/agents/executor/retry"
)

// isRetryableClaudeError reports rate limit, overload, and transient
// server errors from the Anthropic API.
func isRetryableClaudeError(err error) bool {
	var apiErr *anthropic.Error
	return errors.As(err, &apiErr) && retry.RetryableStatus(apiErr.StatusCode)
}
