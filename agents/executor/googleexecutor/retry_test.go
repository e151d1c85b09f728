/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestIsRetryableVertexError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "api 429", err: genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"}, want: true},
		{name: "wrapped api 503", err: fmt.Errorf("send: %w", genai.APIError{Code: 503, Status: "UNAVAILABLE"}), want: true},
		{name: "api 500", err: genai.APIError{Code: 500, Status: "INTERNAL"}, want: true},
		{name: "api 400", err: genai.APIError{Code: 400, Status: "INVALID_ARGUMENT"}, want: false},
		{name: "api 403 mentioning quota", err: genai.APIError{Code: 403, Message: "quota exceeded"}, want: false},
		{name: "grpc exhausted", err: errors.New("rpc error: code = ResourceExhausted desc = RESOURCE_EXHAUSTED"), want: true},
		{name: "grpc unavailable", err: errors.New("rpc error: code = Unavailable desc = UNAVAILABLE"), want: true},
		{name: "overloaded", err: errors.New("model Overloaded, try again"), want: true},
		{name: "rate limit", err: errors.New("rate limit exceeded"), want: true},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: false},
		{name: "permission denied", err: errors.New("permission denied"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryableVertexError(tt.err); got != tt.want {
				t.Errorf("isRetryableVertexError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
