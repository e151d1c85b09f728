/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"

	"github.com/santosh898/git-ranker/agents/agenttrace"
	"go.opentelemetry.io/otel/attribute"
)

// AttributeEnricher adds contextual attributes to the base attributes
// (model, tool) of every recorded metric.
type AttributeEnricher func(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue

// ExecutionContextEnricher adds the repository and turn from the
// agenttrace.ExecutionContext attached to ctx.
func ExecutionContextEnricher(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	return agenttrace.GetExecutionContext(ctx).EnrichAttributes(baseAttrs)
}
