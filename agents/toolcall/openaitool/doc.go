/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package openaitool adapts toolcall tools to OpenAI-compatible chat
// completion function calling, as served by xAI and others.
package openaitool
