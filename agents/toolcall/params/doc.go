/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package params extracts typed arguments from decoded tool-call JSON and
// formats the error maps handed back to the model.
package params
