package otel

import (
	"context"
	"strings"
	"testing"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	config "github.com/inference-gateway/sam3d/server/config"
)

func TestNewOpenTelemetry_RequiresArguments(t *testing.T) {
	_, err := NewOpenTelemetry(nil, zaptest.NewLogger(t))
	assert.EqualError(t, err, "config cannot be nil")

	_, err = NewOpenTelemetry(&config.Config{}, nil)
	assert.EqualError(t, err, "logger cannot be nil")
}

func TestOpenTelemetry_ExportsMetrics(t *testing.T) {
	reg := promclient.NewRegistry()
	cfg := &config.Config{ServiceName: "sam3d", ServiceVersion: "test"}

	telemetry, err := NewOpenTelemetry(cfg, zaptest.NewLogger(t), WithRegisterer(reg))
	require.NoError(t, err)
	defer func() { _ = telemetry.ShutDown(context.Background()) }()

	ctx := context.Background()
	telemetry.RecordRequestCount(ctx, "POST", "/api/sam3d/process")
	telemetry.RecordResponseStatus(ctx, "POST", "/api/sam3d/process", 200)
	telemetry.RecordRequestDuration(ctx, "POST", "/api/sam3d/process", 1234)
	telemetry.RecordRequestOutcome(ctx, "process", "responded", "persisted")
	telemetry.RecordArtifactSize(ctx, "ply", 4096)
	telemetry.RecordModelLoadDuration(ctx, "remote", 30000, true)
	telemetry.RecordInferenceDuration(ctx, "remote", 5000, true)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}

	for _, prefix := range []string{
		"sam3d_requests",
		"sam3d_response_status",
		"sam3d_request_duration",
		"sam3d_request_outcomes",
		"sam3d_artifact_bytes",
		"sam3d_model_load_duration",
		"sam3d_inference_duration",
	} {
		found := false
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				found = true
				break
			}
		}
		assert.True(t, found, "missing metric family %s in %v", prefix, names)
	}
}

func TestNewTracing_Disabled(t *testing.T) {
	tracing, err := NewTracing(context.Background(), &config.Config{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.NoError(t, tracing.Shutdown(context.Background()))

	var nilTracing *Tracing
	assert.NoError(t, nilTracing.Shutdown(context.Background()))
}
