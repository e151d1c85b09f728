/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"context"

	"github.com/chainguard-dev/clog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_evaluations_total",
			Help: "Agent traces evaluated, by check",
		},
		[]string{"check"},
	)
	failureCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_evaluation_failures_total",
			Help: "Agent trace evaluations that failed, by check",
		},
		[]string{"check"},
	)
)

// MetricsObserver counts evaluations in Prometheus and logs failures as
// warnings.
type MetricsObserver struct {
	check  string
	logger *clog.Logger

	evaluated prometheus.Counter
	failed    prometheus.Counter
}

var _ Observer = (*MetricsObserver)(nil)

// NewMetricsObserver returns an observer for the named check that logs
// through the context's logger.
func NewMetricsObserver(ctx context.Context, check string) *MetricsObserver {
	return &MetricsObserver{
		check:     check,
		logger:    clog.FromContext(ctx).With("check", check),
		evaluated: evaluationCounter.WithLabelValues(check),
		failed:    failureCounter.WithLabelValues(check),
	}
}

func (m *MetricsObserver) Increment() {
	m.evaluated.Inc()
}

func (m *MetricsObserver) Fail(msg string) {
	m.failed.Inc()
	m.logger.Warn("Evaluation failed", "reason", msg)
}

func (m *MetricsObserver) Log(msg string) {
	m.logger.Debug(msg)
}
