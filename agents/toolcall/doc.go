/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package toolcall defines provider-independent agent tools and the
// providers that assemble them.
//
// A Tool pairs a Definition with a Handler. Providers compose by wrapping
// one another, each adding its tools to the base provider's map:
//
//	provider := toolcall.NewRepositoryToolsProvider[*analyst.Review](
//		toolcall.NewEmptyToolsProvider[*analyst.Review](),
//	)
//	tools := provider.Tools(toolcall.NewRepositoryTools(toolcall.EmptyTools{}, client.Callbacks()))
//
// The callback types live in the dependency-free callbacks subpackage so
// that packages implementing them, such as ghrepo, need not import any
// model SDK. The claudetool, googletool and openaitool subpackages convert
// tools to each SDK's representation.
package toolcall
