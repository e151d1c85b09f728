/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package ghrepo reads repository trees and files through the GitHub REST contents API.

# URLs

ParseURL extracts the owner and repository name from any string containing
github.com/<owner>/<repo>:

	ref, err := ghrepo.ParseURL("https://github.com/chainguard-dev/clog/tree/main")
	// ref.Owner == "chainguard-dev", ref.Repo == "clog"

A string that does not name a repository fails with ErrInvalidInput.

# Trees and files

A Client is built from an explicit Config so tests can point it at a fake API:

	client, err := ghrepo.NewClient(ctx, ghrepo.Config{Token: pat})

	tree, err := client.Structure(ctx, ref, "")
	if tree.Partial() {
		// some directories could not be listed; tree.Failures says which
	}

	content, err := client.FileContent(ctx, "https://github.com/chainguard-dev/clog", "go.mod")

Listing failures never abort a traversal: the failed subtree is left out and
recorded on the Tree. A file that cannot be fetched comes back as an empty
string. Only malformed URLs (ErrInvalidInput), undecodable content (ErrDecode),
and context cancellation are returned as errors.

# Agent tools

Client.Callbacks adapts the client to callbacks.RepositoryCallbacks, which the
toolcall package exposes to agents as get_github_structure and
fetch_github_file_content.
*/
package ghrepo
