/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
)

func TestIsRetryableClaudeError(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, 529} {
		t.Run(fmt.Sprint(code), func(t *testing.T) {
			t.Parallel()
			if !isRetryableClaudeError(&anthropic.Error{StatusCode: code}) {
				t.Errorf("isRetryableClaudeError(%d) = false, want true", code)
			}
		})
	}

	for i, err := range []error{
		nil,
		errors.New("overloaded"),
		&anthropic.Error{StatusCode: http.StatusBadRequest},
		&anthropic.Error{StatusCode: http.StatusUnauthorized},
		&anthropic.Error{StatusCode: http.StatusNotFound},
	} {
		if isRetryableClaudeError(err) {
			t.Errorf("case %d: isRetryableClaudeError() = true, want false", i)
		}
	}
}
