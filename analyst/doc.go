/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package analyst reviews the code infrastructure of a GitHub repository
// with the "Github Analyst" agent.
//
// The agent lists the repository, finds every package and its manifest,
// reads manifests and lockfiles through the repository tools, and submits a
// Review. Each package gets a rating from 1 to 10 and a list of concerns,
// every one backed by proof from the repository:
//
//	a, err := analyst.New(ctx, analyst.Options{
//		Model:   "grok-beta",
//		Backend: metaagent.Backend{XAIAPIKey: key},
//		GitHub:  client,
//	})
//	review, err := a.Review(ctx, "https://github.com/owner/repo")
//	err = review.Write(os.Stdout, analyst.FormatMarkdown)
package analyst
