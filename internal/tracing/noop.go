// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var _ TracingInterface = (*NoopTracer)(nil)

type NoopTracer struct {
	tracer trace.Tracer
}

func NewNoopTracer() *NoopTracer {
	return &NoopTracer{
		tracer: noop.NewTracerProvider().Tracer(serviceName),
	}
}

func (t *NoopTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

func (t *NoopTracer) Shutdown(ctx context.Context) error {
	return nil
}
