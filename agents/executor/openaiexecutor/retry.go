/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"errors"

	"github.com/openai/openai-go"
	"github.com/santosh898/git-ranker/agents/executor/retry"
)

func isRetryableOpenAIError(err error) bool {
	var apiErr *openai.Error
	return errors.As(err, &apiErr) && retry.RetryableStatus(apiErr.StatusCode)
}
