/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics records token usage and tool calls of agent executions as
// OpenTelemetry counters.
package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MeterName is shared by every executor. The model is a metric dimension.
const MeterName = "git-ranker.agents"

// GenAI holds the generative AI counters.
type GenAI struct {
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	toolCalls        metric.Int64Counter
	enrich           AttributeEnricher
}

// NewGenAI creates the counters on the named meter. A counter that cannot
// be created is logged and replaced with a no-op. Attributes are enriched
// with ExecutionContextEnricher until SetAttributeEnricher says otherwise.
func NewGenAI(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	counter := func(name, description, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit(unit))
		if err != nil {
			slog.Warn("Failed to create counter, metric disabled", "counter", name, "meter", meterName, "error", err)
			return noop.Int64Counter{}
		}
		return c
	}

	return &GenAI{
		promptTokens:     counter("genai.token.prompt", "The number of prompt tokens used", "{tokens}"),
		completionTokens: counter("genai.token.completion", "The number of completion tokens used", "{tokens}"),
		toolCalls:        counter("genai.tool.calls", "The number of tool calls made during execution", "{calls}"),
		enrich:           ExecutionContextEnricher,
	}
}

// SetAttributeEnricher replaces the enricher. nil disables enrichment.
func (m *GenAI) SetAttributeEnricher(enricher AttributeEnricher) {
	m.enrich = enricher
}

func (m *GenAI) attributes(ctx context.Context, base ...attribute.KeyValue) metric.MeasurementOption {
	if m.enrich != nil {
		base = m.enrich(ctx, base)
	}
	return metric.WithAttributes(base...)
}

// RecordTokens adds prompt and completion token counts for model.
func (m *GenAI) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64) {
	attrs := m.attributes(ctx, attribute.String("model", model))
	m.promptTokens.Add(ctx, promptTokens, attrs)
	m.completionTokens.Add(ctx, completionTokens, attrs)
}

// RecordToolCall counts one invocation of toolName by model.
func (m *GenAI) RecordToolCall(ctx context.Context, model, toolName string) {
	m.toolCalls.Add(ctx, 1, m.attributes(ctx, attribute.String("model", model), attribute.String("tool", toolName)))
}
