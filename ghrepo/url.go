/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package ghrepo

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidInput marks a URL that does not name a GitHub repository.
// It is terminal for the request that carried it.
var ErrInvalidInput = errors.New("invalid GitHub URL")

// repoPattern matches the first github.com/<owner>/<repo> in a string.
// Segments stop at separators so query strings and fragments stay out of the repo name.
var repoPattern = regexp.MustCompile(`github\.com/([^/?#\s]+)/([^/?#\s]+)`)

// RepoRef identifies a repository by owner and name.
type RepoRef struct {
	Owner string `json:"owner" xml:"owner"`
	Repo  string `json:"repo" xml:"repo"`
}

// String returns the "owner/repo" form.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Repo
}

// ParseURL extracts the repository reference from a GitHub URL.
// Returns an error wrapping ErrInvalidInput when no repository can be found.
func ParseURL(url string) (RepoRef, error) {
	m := repoPattern.FindStringSubmatch(url)
	if m == nil {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidInput, url)
	}

	repo := strings.TrimSuffix(m[2], ".git")
	if repo == "" {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidInput, url)
	}

	return RepoRef{Owner: m[1], Repo: repo}, nil
}
