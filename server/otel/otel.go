package otel

import (
	"context"
	"fmt"

	config "github.com/inference-gateway/sam3d/server/config"
	promclient "github.com/prometheus/client_golang/prometheus"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	prometheus "go.opentelemetry.io/otel/exporters/prometheus"
	metric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	resource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.32.0"
	zap "go.uber.org/zap"
)

// OpenTelemetry defines the operations for telemetry
//
//go:generate counterfeiter -o ../mocks/fake_open_telemetry.go . OpenTelemetry
type OpenTelemetry interface {
	// HTTP level metrics
	RecordRequestCount(ctx context.Context, requestMethod, requestPath string)
	RecordResponseStatus(ctx context.Context, requestMethod, requestPath string, statusCode int)
	RecordRequestDuration(ctx context.Context, requestMethod, requestPath string, durationMs float64)

	// Reconstruction metrics
	RecordRequestOutcome(ctx context.Context, operation, state, stage string)
	RecordArtifactSize(ctx context.Context, format string, size int64)
	RecordModelLoadDuration(ctx context.Context, provider string, durationMs float64, success bool)
	RecordInferenceDuration(ctx context.Context, provider string, durationMs float64, success bool)

	// Shutdown the telemetry system
	ShutDown(ctx context.Context) error
}

type OpenTelemetryImpl struct {
	logger        *zap.Logger
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter

	// Metrics
	requestCounter           metric.Int64Counter
	responseStatusCounter    metric.Int64Counter
	requestDurationHistogram metric.Float64Histogram
	outcomeCounter           metric.Int64Counter
	artifactSizeHistogram    metric.Int64Histogram
	loadDurationHistogram    metric.Float64Histogram
	inferDurationHistogram   metric.Float64Histogram
}

// Option customises the telemetry setup
type Option func(*options)

type options struct {
	registerer promclient.Registerer
}

// WithRegisterer registers the prometheus collector somewhere other than the
// default registry
func WithRegisterer(r promclient.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}

// NewOpenTelemetry creates a new OpenTelemetry implementation backed by a
// prometheus exporter
func NewOpenTelemetry(cfg *config.Config, logger *zap.Logger, opts ...Option) (OpenTelemetry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	impl := &OpenTelemetryImpl{
		logger: logger,
	}

	if err := impl.initialize(cfg, o); err != nil {
		return nil, fmt.Errorf("failed to initialize opentelemetry: %w", err)
	}

	return impl, nil
}

func (o *OpenTelemetryImpl) initialize(cfg *config.Config, opts options) error {
	o.logger.Info("initializing opentelemetry",
		zap.String("service_name", cfg.ServiceName),
		zap.String("version", cfg.ServiceVersion))

	var exporterOpts []prometheus.Option
	if opts.registerer != nil {
		exporterOpts = append(exporterOpts, prometheus.WithRegisterer(opts.registerer))
	}

	exporter, err := prometheus.New(exporterOpts...)
	if err != nil {
		o.logger.Error("failed to create prometheus exporter", zap.Error(err))
		return err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	// Inference and model loads run for seconds to minutes.
	latencyView := sdkmetric.NewView(
		sdkmetric.Instrument{
			Kind: sdkmetric.InstrumentKindHistogram,
			Unit: "ms",
		},
		sdkmetric.Stream{
			Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000, 120000, 300000, 600000},
			},
		},
	)
	sizeView := sdkmetric.NewView(
		sdkmetric.Instrument{
			Kind: sdkmetric.InstrumentKindHistogram,
			Unit: "By",
		},
		sdkmetric.Stream{
			Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: []float64{1 << 10, 64 << 10, 256 << 10, 1 << 20, 4 << 20, 16 << 20, 64 << 20, 256 << 20},
			},
		},
	)

	o.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
		sdkmetric.WithView(latencyView, sizeView),
	)
	otel.SetMeterProvider(o.meterProvider)

	o.meter = o.meterProvider.Meter(cfg.ServiceName)

	if err := o.initializeMetrics(); err != nil {
		o.logger.Error("failed to initialize metrics", zap.Error(err))
		return err
	}

	o.logger.Info("opentelemetry initialized successfully")
	return nil
}

func (o *OpenTelemetryImpl) RecordRequestCount(ctx context.Context, requestMethod, requestPath string) {
	o.requestCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
	))
}

func (o *OpenTelemetryImpl) RecordResponseStatus(ctx context.Context, requestMethod, requestPath string, statusCode int) {
	o.responseStatusCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
		attribute.Int("status_code", statusCode),
	))
}

func (o *OpenTelemetryImpl) RecordRequestDuration(ctx context.Context, requestMethod, requestPath string, durationMs float64) {
	o.requestDurationHistogram.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
	))
}

func (o *OpenTelemetryImpl) RecordRequestOutcome(ctx context.Context, operation, state, stage string) {
	o.outcomeCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("state", state),
		attribute.String("stage", stage),
	))
}

func (o *OpenTelemetryImpl) RecordArtifactSize(ctx context.Context, format string, size int64) {
	o.artifactSizeHistogram.Record(ctx, size, metric.WithAttributes(
		attribute.String("format", format),
	))
}

func (o *OpenTelemetryImpl) RecordModelLoadDuration(ctx context.Context, provider string, durationMs float64, success bool) {
	o.loadDurationHistogram.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.Bool("success", success),
	))
}

func (o *OpenTelemetryImpl) RecordInferenceDuration(ctx context.Context, provider string, durationMs float64, success bool) {
	o.inferDurationHistogram.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.Bool("success", success),
	))
}

func (o *OpenTelemetryImpl) ShutDown(ctx context.Context) error {
	return o.meterProvider.Shutdown(ctx)
}

func (o *OpenTelemetryImpl) initializeMetrics() error {
	var err error

	o.requestCounter, err = o.meter.Int64Counter(
		"sam3d.requests.total",
		metric.WithDescription("Total number of HTTP requests received"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request counter: %w", err)
	}

	o.responseStatusCounter, err = o.meter.Int64Counter(
		"sam3d.response_status.total",
		metric.WithDescription("Total number of responses by status code"),
		metric.WithUnit("{response}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create response status counter: %w", err)
	}

	o.requestDurationHistogram, err = o.meter.Float64Histogram(
		"sam3d.request_duration",
		metric.WithDescription("Duration of HTTP request processing"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	o.outcomeCounter, err = o.meter.Int64Counter(
		"sam3d.request_outcomes.total",
		metric.WithDescription("Reconstruction requests by terminal state and last stage reached"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create outcome counter: %w", err)
	}

	o.artifactSizeHistogram, err = o.meter.Int64Histogram(
		"sam3d.artifact_bytes",
		metric.WithDescription("Size of stored model artifacts"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create artifact size histogram: %w", err)
	}

	o.loadDurationHistogram, err = o.meter.Float64Histogram(
		"sam3d.model_load_duration",
		metric.WithDescription("Duration of model loads"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("failed to create model load histogram: %w", err)
	}

	o.inferDurationHistogram, err = o.meter.Float64Histogram(
		"sam3d.inference_duration",
		metric.WithDescription("Duration of model forward passes"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("failed to create inference duration histogram: %w", err)
	}

	o.logger.Debug("all opentelemetry metrics initialized successfully")
	return nil
}
