/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder builds LLM prompts from constant templates and
// encoded data, in the way prepared statements build SQL.
//
// Templates and literal bindings must be untyped string constants. Runtime
// data can only enter through BindXML, BindJSON or BindYAML, where the
// encoder escapes it. Substitution happens in a single pass, so a bound
// value that contains {{name}} is never expanded again.
//
//	p := promptbuilder.MustNewPrompt(`Review this repository:
//	{{request}}`)
//	p, err := p.BindXML("request", req)
//	if err != nil {
//		return err
//	}
//	text, err := p.Build()
package promptbuilder
