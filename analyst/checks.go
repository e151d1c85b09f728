/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package analyst

import (
	"fmt"
	"path"
	"strings"

	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/evals"
	"github.com/santosh898/git-ranker/agents/toolcall"
)

const submitToolName = "submit_review"

// Checks returns the evaluations run against every analyst trace, keyed by
// name.
func Checks() map[string]evals.ObservableTraceCallback[*Review] {
	return map[string]evals.ObservableTraceCallback[*Review]{
		"completed": evals.Completed[*Review](),
		"explored": evals.RequiredToolCalls[*Review](
			toolcall.GetStructureToolName, submitToolName),
		"allowed-tools": evals.OnlyToolCalls[*Review](
			toolcall.GetStructureToolName, toolcall.FetchFileContentToolName, submitToolName),
		"valid-review":   evals.ResultValidator((*Review).Validate),
		"manifests-read": manifestsRead,
	}
}

// manifestsRead fails reviews that rate a package without having read any
// file in its directory.
func manifestsRead(o evals.Observer, trace *agenttrace.Trace[*Review]) {
	if trace.Result == nil {
		return
	}

	var read []string
	for _, tc := range trace.ToolCalls {
		if tc.Name != toolcall.FetchFileContentToolName || tc.Error != nil {
			continue
		}
		if p, ok := tc.Params["file_path"].(string); ok {
			read = append(read, path.Clean(strings.TrimPrefix(p, "/")))
		}
	}

	for _, pkg := range trace.Result.Packages {
		dir := path.Clean(strings.Trim(pkg.Path, "/"))
		if !containsFileIn(read, dir) {
			o.Fail(fmt.Sprintf("package %s rated without reading any file in %q", pkg.Name, dir))
		}
	}
}

func containsFileIn(files []string, dir string) bool {
	for _, f := range files {
		if path.Dir(f) == dir {
			return true
		}
	}
	return false
}
