package otel

import (
	"context"
	"fmt"

	config "github.com/inference-gateway/sam3d/server/config"
	otel "go.opentelemetry.io/otel"
	otlptracegrpc "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	propagation "go.opentelemetry.io/otel/propagation"
	resource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.32.0"
	zap "go.uber.org/zap"
)

// Tracing owns the trace provider. The zero value is a no-op.
type Tracing struct {
	tp *sdktrace.TracerProvider
}

// NewTracing exports spans over OTLP gRPC when tracing is enabled and
// registers the provider globally. When disabled the global provider stays
// a no-op and nothing connects to a collector.
func NewTracing(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Tracing, error) {
	tc := cfg.TelemetryConfig.TracingConfig
	if !tc.Enable {
		logger.Debug("tracing disabled")
		return &Tracing{}, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(tc.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(tc.SampleRate))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracing initialized",
		zap.String("endpoint", tc.Endpoint),
		zap.Float64("sample_rate", tc.SampleRate))

	return &Tracing{tp: tp}, nil
}

// Shutdown flushes pending spans
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t == nil || t.tp == nil {
		return nil
	}
	if err := t.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down tracer provider: %w", err)
	}
	return nil
}
