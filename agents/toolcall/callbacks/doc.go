/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package callbacks holds the callback types agent tools are built on.

It imports nothing beyond the standard library, so packages that implement
callbacks can do so without pulling in a model SDK.

# Repository Callbacks

RepositoryCallbacks reads a GitHub repository:

	cb := callbacks.RepositoryCallbacks{
		GetStructure: func(ctx context.Context, url string) (callbacks.Structure, error) {
			// List every file path in the repository
		},
		FetchFileContent: func(ctx context.Context, githubURL, filePath string) (string, error) {
			// Return the decoded text of one file
		},
	}

ghrepo.Client.Callbacks returns an implementation backed by the GitHub REST API.
*/
package callbacks
