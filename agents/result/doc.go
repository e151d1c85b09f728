/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package result recovers structured output from free-form model replies.
//
// Executors use it when a model answers in text instead of calling the
// submit_result tool.
package result
