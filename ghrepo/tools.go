/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package ghrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santosh898/git-ranker/agents/toolcall/callbacks"
)

// Callbacks returns the repository tool callbacks backed by this client.
func (c *Client) Callbacks() callbacks.RepositoryCallbacks {
	return callbacks.RepositoryCallbacks{
		GetStructure:     c.GetGithubStructure,
		FetchFileContent: c.FileContent,
	}
}

// GetGithubStructure lists the whole repository named by url and returns the
// file paths as a JSON array. Directories that could not be listed are
// reported in Structure.Skipped.
func (c *Client) GetGithubStructure(ctx context.Context, url string) (callbacks.Structure, error) {
	ref, err := ParseURL(url)
	if err != nil {
		return callbacks.Structure{}, err
	}

	tree, err := c.Structure(ctx, ref, "")
	if err != nil {
		return callbacks.Structure{}, err
	}

	b, err := json.Marshal(tree.Paths)
	if err != nil {
		return callbacks.Structure{}, fmt.Errorf("encoding structure of %s: %w", ref, err)
	}

	s := callbacks.Structure{Paths: string(b)}
	for _, f := range tree.Failures {
		s.Skipped = append(s.Skipped, f.String())
	}
	return s, nil
}
