/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package ghrepo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/chainguard-dev/clog"
)

// ErrDecode marks file content that claims base64 encoding but is not valid
// base64-encoded UTF-8 text.
var ErrDecode = errors.New("decoding file content")

// FileContent fetches one file from the repository named by githubURL.
//
// Base64 content is decoded to text; content in any other encoding is
// returned as the API sent it. A request the API rejects yields an empty
// string and a nil error.
func (c *Client) FileContent(ctx context.Context, githubURL, filePath string) (string, error) {
	ref, err := ParseURL(githubURL)
	if err != nil {
		return "", err
	}
	content, failure, err := c.File(ctx, ref, filePath)
	if err != nil {
		return "", err
	}
	if failure != nil {
		clog.FromContext(ctx).With("repository", ref.String()).
			With("path", filePath).
			With("status", failure.StatusCode).
			With("message", failure.Message).
			Warn("Failed to fetch file content")
		return "", nil
	}
	return content, nil
}

// File fetches and decodes one file, reporting a rejected request as a
// failure so that callers can tell it apart from an empty file.
func (c *Client) File(ctx context.Context, ref RepoRef, filePath string) (string, *UpstreamFailure, error) {
	file, dir, failure, err := c.getContents(ctx, "get", ref, filePath)
	if err != nil || failure != nil {
		return "", failure, err
	}
	if file == nil {
		return "", nil, fmt.Errorf("%w: %q in %s is a directory (%d entries)", ErrInvalidInput, filePath, ref, len(dir))
	}

	var raw string
	if file.Content != nil {
		raw = *file.Content
	}
	if file.GetEncoding() != "base64" {
		return raw, nil, nil
	}
	content, err := decodeBase64(raw)
	return content, nil, err
}

// decodeBase64 decodes standard base64 (line breaks are ignored) and requires
// the result to be UTF-8.
func decodeBase64(raw string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: content is not valid UTF-8", ErrDecode)
	}
	return string(b), nil
}
