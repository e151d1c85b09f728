/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package evals checks completed agent traces.
//
// A check is an ObservableTraceCallback: it inspects a trace and reports
// failures to an Observer. Tracer turns a set of named checks into an
// agenttrace.Tracer, so the checks run whenever an execution finishes:
//
//	checks := map[string]evals.ObservableTraceCallback[*analyst.Review]{
//		"completed": evals.Completed[*analyst.Review](),
//		"tools":     evals.RequiredToolCalls[*analyst.Review]("get_github_structure", "submit_review"),
//	}
//	tracer := evals.Tracer(func(name string) *evals.MetricsObserver {
//		return evals.NewMetricsObserver(ctx, name)
//	}, checks)
//	ctx = agenttrace.WithTracer(ctx, tracer)
//
// Collector records failures in memory, which suits tests. MetricsObserver
// counts evaluations and failures per check in Prometheus.
package evals
