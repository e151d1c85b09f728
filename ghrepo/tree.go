/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package ghrepo

import (
	"context"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
)

// Tree is the flattened file listing of a repository subtree.
type Tree struct {
	// Paths holds every file path in pre-order: API listing order within a
	// directory, with subdirectories expanded where they appear.
	Paths []string `json:"paths"`

	// Failures lists the directories that could not be listed.
	// Their subtrees are absent from Paths.
	Failures []UpstreamFailure `json:"failures,omitempty"`
}

// Partial reports whether any directory listing failed.
func (t *Tree) Partial() bool {
	return len(t.Failures) > 0
}

type entry struct {
	path string
	dir  bool
}

type listing struct {
	entries []entry
	failure *UpstreamFailure
}

// Structure lists every file under path (the repository root when empty).
//
// Directories are fetched frontier by frontier with at most Config.Concurrency
// listings in flight. A listing that fails leaves its subtree out of the result
// and is recorded in Tree.Failures; it does not fail the traversal. The
// returned error is non-nil only when ctx is done.
func (c *Client) Structure(ctx context.Context, ref RepoRef, path string) (*Tree, error) {
	log := clog.FromContext(ctx).With("repository", ref.String())

	listings := make(map[string][]entry)
	seen := map[string]struct{}{path: {}}
	tree := &Tree{Paths: []string{}}

	for pending := []string{path}; len(pending) > 0; {
		results := make([]listing, len(pending))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.concurrency)
		for i, dir := range pending {
			g.Go(func() error {
				l, err := c.listDirectory(gctx, ref, dir)
				if err != nil {
					return err
				}
				results[i] = l
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		var next []string
		for i, dir := range pending {
			if f := results[i].failure; f != nil {
				log.With("path", dir).
					With("status", f.StatusCode).
					With("message", f.Message).
					Warn("Failed to list repository directory")
				tree.Failures = append(tree.Failures, *f)
				continue
			}
			listings[dir] = results[i].entries
			for _, e := range results[i].entries {
				if !e.dir {
					continue
				}
				if _, ok := seen[e.path]; ok {
					continue
				}
				seen[e.path] = struct{}{}
				next = append(next, e.path)
			}
		}
		pending = next
	}

	tree.Paths = flatten(listings, path)

	log.With("files", len(tree.Paths)).
		With("directories", len(listings)).
		With("failures", len(tree.Failures)).
		Info("Listed repository structure")
	return tree, nil
}

// listDirectory fetches one directory. A path that turns out to be a file
// lists as itself.
func (c *Client) listDirectory(ctx context.Context, ref RepoRef, path string) (listing, error) {
	file, dir, failure, err := c.getContents(ctx, "list", ref, path)
	if err != nil {
		return listing{}, err
	}
	if failure != nil {
		return listing{failure: failure}, nil
	}
	if file != nil {
		return listing{entries: []entry{{path: file.GetPath()}}}, nil
	}

	entries := make([]entry, 0, len(dir))
	for _, item := range dir {
		entries = append(entries, entry{
			path: item.GetPath(),
			dir:  item.GetType() == "dir",
		})
	}
	return listing{entries: entries}, nil
}

// flatten walks the fetched listings in pre-order without recursion.
// Directories with no listing (failed or cut off) contribute nothing, and a
// directory is expanded at most once even if listings refer back to it.
func flatten(listings map[string][]entry, root string) []string {
	type frame struct {
		entries []entry
		next    int
	}

	paths := []string{}
	expanded := map[string]struct{}{root: {}}
	stack := []*frame{{entries: listings[root]}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		e := top.entries[top.next]
		top.next++

		if !e.dir {
			paths = append(paths, e.path)
			continue
		}
		if _, done := expanded[e.path]; done {
			continue
		}
		if sub, ok := listings[e.path]; ok {
			expanded[e.path] = struct{}{}
			stack = append(stack, &frame{entries: sub})
		}
	}
	return paths
}
