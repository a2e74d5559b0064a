package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/inference-gateway/sam3d/client"
	server "github.com/inference-gateway/sam3d/server"
	config "github.com/inference-gateway/sam3d/server/config"
	inference "github.com/inference-gateway/sam3d/server/inference"
	mocks "github.com/inference-gateway/sam3d/server/mocks"
	testutils "github.com/inference-gateway/sam3d/server/testutils"
	types "github.com/inference-gateway/sam3d/types"
)

var splat = []byte("ply\nend_header\n\x01\x02")

func newService(t *testing.T, available bool) (*httptest.Server, *mocks.FakeModel) {
	t.Helper()
	logger := zaptest.NewLogger(t)

	model := &mocks.FakeModel{}
	model.InferReturns(inference.Result{Splat: inference.Output{Present: true, Data: splat}}, nil)

	var engine inference.Engine
	if available {
		fake := &mocks.FakeEngine{}
		fake.NameReturns("fake")
		fake.LoadReturns(model, nil)
		engine = fake
	}

	cfg := config.Config{
		StorageConfig: config.StorageConfig{Provider: "filesystem", BasePath: t.TempDir()},
	}
	gateway := inference.NewGateway(cfg.InferenceConfig, engine, logger)

	srv, err := server.NewServerBuilder(cfg, logger).WithGateway(gateway).Build()
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, model
}

func TestNewClient(t *testing.T) {
	for _, baseURL := range []string{"http://localhost:8000", "https://example.com/"} {
		c := client.NewClient(baseURL)
		assert.Equal(t, baseURL, c.GetBaseURL())
		assert.NotNil(t, c.GetLogger())
	}
}

func TestClient_ProcessAndGetModel(t *testing.T) {
	ts, model := newService(t, true)
	c := client.NewClientWithConfig(&client.Config{BaseURL: ts.URL + "/", Timeout: 10 * time.Second, Logger: zaptest.NewLogger(t)})
	ctx := context.Background()

	seed := int64(9)
	result, err := c.Process(ctx, client.ProcessRequest{
		Image:  testutils.PNG(t, 4, 4),
		Mask:   testutils.MaskPNG(t, 4, 4),
		Seed:   &seed,
		Format: types.FormatPLY,
	})
	require.NoError(t, err)
	assert.Equal(t, splat, result.Data)
	assert.Equal(t, types.FormatPLY, result.Format)
	assert.Equal(t, "model_"+result.ModelID+".ply", result.Filename)
	assert.NotEmpty(t, result.ETag)

	_, req := model.InferArgsForCall(0)
	assert.Equal(t, int64(9), req.Seed)
	assert.NotNil(t, req.Mask)

	stored, err := c.GetModel(ctx, result.ModelID)
	require.NoError(t, err)
	assert.Equal(t, splat, stored.Data)
	assert.Equal(t, result.ETag, stored.ETag)
}

func TestClient_Convert(t *testing.T) {
	ts, _ := newService(t, true)
	c := client.NewClient(ts.URL)

	result, err := c.Convert(context.Background(), client.ProcessRequest{Image: testutils.PNG(t, 2, 2)})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, splat, result.Data)
}

func TestClient_InfoAndHealth(t *testing.T) {
	ts, _ := newService(t, true)
	c := client.NewClient(ts.URL)
	ctx := context.Background()

	info, err := c.GetInfo(ctx)
	require.NoError(t, err)
	assert.True(t, info.Sam3DAvailable)

	health, err := c.GetHealth(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.HealthStatusHealthy, health.Status)
	require.NotNil(t, health.Sam3DLoaded)
	assert.True(t, *health.Sam3DLoaded)
}

func TestClient_APIErrors(t *testing.T) {
	ts, _ := newService(t, true)
	c := client.NewClient(ts.URL)
	ctx := context.Background()

	_, err := c.Process(ctx, client.ProcessRequest{Image: []byte("plain text"), ImageContentType: "text/plain"})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "File must be an image", apiErr.Message)

	_, err = c.Process(ctx, client.ProcessRequest{Image: testutils.PNG(t, 2, 2), Format: types.FormatGLB})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotImplemented, apiErr.StatusCode)

	_, err = c.GetModel(ctx, "6f1c1c2e-8d1f-4c53-9f0e-3c1b2a4d5e6f")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Model not found", apiErr.Message)

	_, err = c.Process(ctx, client.ProcessRequest{})
	assert.EqualError(t, err, "image is required")
}

func TestClient_ConvertUnavailable(t *testing.T) {
	ts, _ := newService(t, false)
	c := client.NewClient(ts.URL)

	_, err := c.Convert(context.Background(), client.ProcessRequest{Image: testutils.PNG(t, 2, 2)})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Len(t, apiErr.Instructions, 3)
}

func TestClient_GetRetriesTransportErrors(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			if conn, _, err := w.(http.Hijacker).Hijack(); err == nil {
				_ = conn.Close()
			}
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"degraded","sam3d_available":false}`))
	}))
	defer ts.Close()

	cfg := client.DefaultConfig(ts.URL)
	cfg.RetryDelay = time.Millisecond
	c := client.NewClientWithConfig(cfg)

	health, err := c.GetHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.HealthStatusDegraded, health.Status)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_UploadIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if conn, _, err := w.(http.Hijacker).Hijack(); err == nil {
			_ = conn.Close()
		}
	}))
	defer ts.Close()

	cfg := client.DefaultConfig(ts.URL)
	cfg.RetryDelay = time.Millisecond
	c := client.NewClientWithConfig(cfg)

	_, err := c.Process(context.Background(), client.ProcessRequest{Image: testutils.PNG(t, 2, 2)})
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestArtifactFilename(t *testing.T) {
	assert.Equal(t, "model_x.ply", client.ArtifactFilename(`attachment; filename="model_x.ply"`))
	assert.Empty(t, client.ArtifactFilename(""))
}
