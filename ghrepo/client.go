/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package ghrepo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-github/v84/github"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com/"

var contentsRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ghrepo_contents_requests_total",
		Help: "GitHub contents API requests by operation and response code",
	},
	[]string{"operation", "code"},
)

// Config configures a Client.
type Config struct {
	// Token is the personal access token, sent as "Authorization: token <Token>".
	// Requests are anonymous when it is empty.
	Token string

	// BaseURL overrides the REST endpoint (default: DefaultBaseURL).
	BaseURL string

	// Concurrency bounds the directory listings in flight during a traversal.
	// Zero lists one directory at a time.
	Concurrency int

	// HTTPClient is the client the token transport wraps (default: http.DefaultClient).
	HTTPClient *http.Client
}

// Client reads repository contents from the GitHub REST API.
type Client struct {
	gh          *github.Client
	concurrency int
}

// NewClient creates a Client from the given configuration.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}

	httpClient := cfg.HTTPClient
	if cfg.Token != "" {
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		// The contents API accepts the classic "token" scheme for PATs.
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "token",
		}))
	}

	gh := github.NewClient(httpClient)
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing base URL %q: %w", cfg.BaseURL, err)
		}
		gh.BaseURL = u
	}

	return &Client{
		gh:          gh,
		concurrency: max(cfg.Concurrency, 1),
	}, nil
}

// UpstreamFailure describes a contents request that did not succeed.
// StatusCode is zero when no HTTP response was received.
type UpstreamFailure struct {
	Path       string `json:"path"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (f UpstreamFailure) String() string {
	path := f.Path
	if path == "" {
		path = "/"
	}
	if f.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", path, f.Message)
	}
	return fmt.Sprintf("%s: %d %s", path, f.StatusCode, f.Message)
}

func (f UpstreamFailure) code() string {
	if f.StatusCode == 0 {
		return "error"
	}
	return strconv.Itoa(f.StatusCode)
}

// getContents performs one contents request. Upstream problems are returned as
// a failure rather than an error; only context cancellation is an error.
func (c *Client) getContents(ctx context.Context, operation string, ref RepoRef, path string) (*github.RepositoryContent, []*github.RepositoryContent, *UpstreamFailure, error) {
	file, dir, resp, err := c.gh.Repositories.GetContents(ctx, ref.Owner, ref.Repo, path, nil)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, nil, ctxErr
		}
		f := newUpstreamFailure(path, resp, err)
		contentsRequests.WithLabelValues(operation, f.code()).Inc()
		return nil, nil, &f, nil
	}
	contentsRequests.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	return file, dir, nil, nil
}

func newUpstreamFailure(path string, resp *github.Response, err error) UpstreamFailure {
	f := UpstreamFailure{Path: path}
	if resp != nil && resp.Response != nil {
		f.StatusCode = resp.StatusCode
	}

	var (
		errResp   *github.ErrorResponse
		rateErr   *github.RateLimitError
		secondary *github.AbuseRateLimitError
	)
	switch {
	case errors.As(err, &errResp):
		f.Message = errResp.Message
	case errors.As(err, &rateErr):
		f.Message = rateErr.Message
	case errors.As(err, &secondary):
		f.Message = secondary.Message
	default:
		f.Message = err.Error()
	}
	return f
}
