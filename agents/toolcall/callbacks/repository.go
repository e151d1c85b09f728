/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package callbacks

import "context"

// Structure is the listing of a repository as handed to the model.
type Structure struct {
	// Paths is a JSON array of every file path, in traversal order.
	Paths string
	// Skipped describes directories that could not be listed; their
	// contents are missing from Paths.
	Skipped []string
}

// RepositoryCallbacks reads files and structure from a GitHub repository.
type RepositoryCallbacks struct {
	// GetStructure lists the repository named by url.
	GetStructure func(ctx context.Context, url string) (Structure, error)

	// FetchFileContent returns the text of filePath in the repository named by
	// githubURL. It returns "" with a nil error when the file could not be fetched.
	FetchFileContent func(ctx context.Context, githubURL, filePath string) (string, error)
}

// HasGetStructure reports whether GetStructure is set.
func (c RepositoryCallbacks) HasGetStructure() bool {
	return c.GetStructure != nil
}

// HasFetchFileContent reports whether FetchFileContent is set.
func (c RepositoryCallbacks) HasFetchFileContent() bool {
	return c.FetchFileContent != nil
}
