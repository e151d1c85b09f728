/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Bindable is implemented by request types. Executors call Bind with their
// prompt template so each request can supply its own values.
type Bindable interface {
	// Bind returns a copy of prompt with the receiver's values bound.
	Bind(prompt *Prompt) (*Prompt, error)
}

// Noop is a Bindable that leaves the prompt unchanged.
type Noop struct{}

// Bind implements Bindable.
func (Noop) Bind(prompt *Prompt) (*Prompt, error) {
	return prompt, nil
}
