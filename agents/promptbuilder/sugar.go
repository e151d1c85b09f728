/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Must panics if err is non-nil. It is meant for package-level prompts:
//
//	var p = promptbuilder.Must(promptbuilder.NewPrompt(`Review {{repository}}`))
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// MustNewPrompt is Must(NewPrompt(template)).
func MustNewPrompt(template stringLiteral) *Prompt {
	return Must(NewPrompt(template))
}

// MustBindStringLiteral is Must(p.BindStringLiteral(name, value)).
func (p *Prompt) MustBindStringLiteral(name string, value stringLiteral) *Prompt {
	return Must(p.BindStringLiteral(name, value))
}
