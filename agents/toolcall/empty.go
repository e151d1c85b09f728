/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

// EmptyTools is the callback type of the base provider. It carries nothing.
type EmptyTools struct{}

type emptyToolsProvider[Resp any] struct{}

var _ ToolProvider[any, EmptyTools] = (*emptyToolsProvider[any])(nil)

// NewEmptyToolsProvider returns the provider every tool stack starts from.
func NewEmptyToolsProvider[Resp any]() ToolProvider[Resp, EmptyTools] {
	return emptyToolsProvider[Resp]{}
}

func (emptyToolsProvider[Resp]) Tools(EmptyTools) map[string]Tool[Resp] {
	return map[string]Tool[Resp]{}
}
