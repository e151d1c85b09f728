/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package retry retries model API calls that fail with rate limit or
// transient server errors.
package retry

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
)

// RetryConfig configures backoff between attempts.
type RetryConfig struct {
	// MaxRetries is the number of attempts after the first. Zero disables retries.
	MaxRetries int
	// BaseBackoff is the wait before the first retry. It doubles each attempt.
	BaseBackoff time.Duration
	// MaxBackoff caps the doubled wait.
	MaxBackoff time.Duration
	// MaxJitter bounds the random delay added to each wait.
	MaxJitter time.Duration
}

// Validate rejects negative values.
func (c RetryConfig) Validate() error {
	switch {
	case c.MaxRetries < 0:
		return errors.New("max retries cannot be negative")
	case c.BaseBackoff < 0:
		return errors.New("base backoff cannot be negative")
	case c.MaxBackoff < 0:
		return errors.New("max backoff cannot be negative")
	case c.MaxJitter < 0:
		return errors.New("max jitter cannot be negative")
	}
	return nil
}

// DefaultRetryConfig waits 1s, 2s, 4s... up to a minute, five times.
// Quota errors take a while to clear, so the base is large.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:  5,
		BaseBackoff: time.Second,
		MaxBackoff:  time.Minute,
		MaxJitter:   500 * time.Millisecond,
	}
}

// RetryableStatus reports whether an HTTP status from a model API is worth
// retrying: 429, 500, 502, 503, 504, and Anthropic's 529 overloaded.
func RetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		529:
		return true
	}
	return false
}

// RetryWithBackoff calls fn until it succeeds, returns an error isRetryable
// rejects, or the retries run out. Waits honor ctx.
func RetryWithBackoff[T any](ctx context.Context, cfg RetryConfig, operation string, isRetryable func(error) bool, fn func() (T, error)) (T, error) {
	var (
		out T
		err error
	)
	for attempt := 0; ; attempt++ {
		out, err = fn()
		if err == nil || !isRetryable(err) {
			return out, err
		}
		if attempt >= cfg.MaxRetries {
			return out, fmt.Errorf("%s failed after %d retries: %w", operation, cfg.MaxRetries, err)
		}

		wait := backoff(cfg, attempt)
		clog.FromContext(ctx).With("operation", operation).
			With("attempt", attempt+1).
			With("max_retries", cfg.MaxRetries).
			With("backoff", wait).
			With("error", err.Error()).
			Warn("Model API call failed, retrying")

		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func backoff(cfg RetryConfig, attempt int) time.Duration {
	wait := min(cfg.BaseBackoff<<attempt, cfg.MaxBackoff)
	if cfg.MaxJitter > 0 {
		if n, err := rand.Int(rand.Reader, big.NewInt(int64(cfg.MaxJitter))); err == nil {
			wait += time.Duration(n.Int64())
		}
	}
	return wait
}
