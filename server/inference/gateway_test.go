package inference_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	attribute "go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	tracetest "go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zaptest"

	config "github.com/inference-gateway/sam3d/server/config"
	inference "github.com/inference-gateway/sam3d/server/inference"
	mocks "github.com/inference-gateway/sam3d/server/mocks"
)

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: sam-3d-objects\nsteps: 25\n"), 0o644))
	return path
}

func newFakeEngine(model inference.Model) *mocks.FakeEngine {
	engine := &mocks.FakeEngine{}
	engine.NameReturns("fake")
	engine.LoadReturns(model, nil)
	return engine
}

type recordedTiming struct {
	kind    string
	success bool
}

type fakeRecorder struct {
	mu      sync.Mutex
	timings []recordedTiming
}

func (r *fakeRecorder) RecordModelLoadDuration(_ context.Context, _ string, _ float64, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timings = append(r.timings, recordedTiming{kind: "load", success: success})
}

func (r *fakeRecorder) RecordInferenceDuration(_ context.Context, _ string, _ float64, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timings = append(r.timings, recordedTiming{kind: "infer", success: success})
}

func TestGateway_Unavailable(t *testing.T) {
	gw := inference.NewGateway(config.InferenceConfig{}, nil, zaptest.NewLogger(t))

	assert.False(t, gw.Available())
	assert.False(t, gw.Loaded())

	h, err := gw.Acquire(context.Background())
	assert.Nil(t, h)
	assert.ErrorIs(t, err, inference.ErrUnavailable)
	assert.NoError(t, gw.Close())
}

func TestGateway_NewGatewayFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		workerURL string
		available bool
	}{
		{name: "remote provider", provider: "remote", workerURL: "http://localhost:8001", available: true},
		{name: "none provider", provider: "none", available: false},
		{name: "unknown provider", provider: "local-gpu", available: false},
		{name: "remote provider with bad url", provider: "remote", workerURL: "ftp://worker", available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := inference.NewGatewayFromConfig(config.InferenceConfig{
				Provider:  tt.provider,
				WorkerURL: tt.workerURL,
			}, zaptest.NewLogger(t))
			defer func() { _ = gw.Close() }()

			assert.Equal(t, tt.available, gw.Available())
			if !tt.available {
				_, err := gw.Acquire(context.Background())
				assert.ErrorIs(t, err, inference.ErrUnavailable)
			}
		})
	}
}

func TestGateway_ConcurrentAcquireLoadsOnce(t *testing.T) {
	model := &mocks.FakeModel{}
	engine := newFakeEngine(model)
	engine.LoadCalls(func(context.Context, inference.LoadOptions) (inference.Model, error) {
		time.Sleep(20 * time.Millisecond)
		return model, nil
	})

	recorder := &fakeRecorder{}
	gw := inference.NewGateway(config.InferenceConfig{
		CheckpointPath: writeManifest(t),
		Compile:        true,
	}, engine, zaptest.NewLogger(t), inference.WithRecorder(recorder))

	const callers = 16
	handles := make([]*inference.Handle, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = gw.Acquire(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, handles[0], handles[i])
	}
	assert.Equal(t, 1, engine.LoadCallCount())
	assert.True(t, gw.Loaded())

	_, opts := engine.LoadArgsForCall(0)
	assert.True(t, opts.Compile)

	h, err := gw.Acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, handles[0], h)
	assert.Equal(t, 1, engine.LoadCallCount())
	assert.Equal(t, []recordedTiming{{kind: "load", success: true}}, recorder.timings)
}

func TestGateway_FailedLoadIsRetried(t *testing.T) {
	model := &mocks.FakeModel{}
	engine := newFakeEngine(model)
	engine.LoadReturnsOnCall(0, nil, errors.New("worker offline"))
	engine.LoadReturnsOnCall(1, model, nil)

	gw := inference.NewGateway(config.InferenceConfig{}, engine, zaptest.NewLogger(t))

	_, err := gw.Acquire(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker offline")
	assert.False(t, gw.Loaded())

	h, err := gw.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, h)
	assert.True(t, gw.Loaded())
	assert.Equal(t, 2, engine.LoadCallCount())
}

func TestGateway_MissingPrerequisites(t *testing.T) {
	engine := newFakeEngine(&mocks.FakeModel{})
	gw := inference.NewGateway(config.InferenceConfig{
		CheckpointPath: filepath.Join(t.TempDir(), "missing", "pipeline.yaml"),
	}, engine, zaptest.NewLogger(t))

	assert.True(t, gw.Available())

	_, err := gw.Acquire(context.Background())
	assert.ErrorIs(t, err, inference.ErrUnavailable)
	assert.Contains(t, err.Error(), "checkpoints not found")
	assert.Equal(t, 0, engine.LoadCallCount())
	assert.False(t, gw.Loaded())
}

func TestGateway_AcquireHonoursCallerContext(t *testing.T) {
	release := make(chan struct{})
	model := &mocks.FakeModel{}
	engine := newFakeEngine(model)
	engine.LoadCalls(func(context.Context, inference.LoadOptions) (inference.Model, error) {
		<-release
		return model, nil
	})

	gw := inference.NewGateway(config.InferenceConfig{}, engine, zaptest.NewLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gw.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	h, err := gw.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, h)
	assert.Equal(t, 1, engine.LoadCallCount())
}

func TestGateway_Run(t *testing.T) {
	model := &mocks.FakeModel{}
	model.InferReturns(inference.Result{
		Splat: inference.Output{Present: true, Data: []byte("ply\n")},
	}, nil)
	engine := newFakeEngine(model)

	recorder := &fakeRecorder{}
	gw := inference.NewGateway(config.InferenceConfig{}, engine, zaptest.NewLogger(t), inference.WithRecorder(recorder))

	h, err := gw.Acquire(context.Background())
	require.NoError(t, err)

	img := &inference.Image{Width: 1, Height: 1, Pix: []uint8{1, 2, 3}}
	result, err := gw.Run(context.Background(), h, inference.Request{Image: img, Seed: 7})
	require.NoError(t, err)
	assert.True(t, result.Splat.Present)
	assert.Equal(t, []byte("ply\n"), result.Splat.Data)
	assert.False(t, result.Mesh.Present)

	require.Equal(t, 1, model.InferCallCount())
	_, req := model.InferArgsForCall(0)
	assert.Equal(t, int64(7), req.Seed)
	assert.Same(t, img, req.Image)
	assert.Nil(t, req.Mask)

	assert.Equal(t, []recordedTiming{
		{kind: "load", success: true},
		{kind: "infer", success: true},
	}, recorder.timings)
}

func TestGateway_RunPropagatesModelError(t *testing.T) {
	model := &mocks.FakeModel{}
	model.InferReturns(inference.Result{}, errors.New("CUDA out of memory"))
	gw := inference.NewGateway(config.InferenceConfig{}, newFakeEngine(model), zaptest.NewLogger(t))

	h, err := gw.Acquire(context.Background())
	require.NoError(t, err)

	_, err = gw.Run(context.Background(), h, inference.Request{Seed: 42})
	assert.EqualError(t, err, "CUDA out of memory")
}

func TestGateway_RunWithoutHandle(t *testing.T) {
	gw := inference.NewGateway(config.InferenceConfig{}, newFakeEngine(&mocks.FakeModel{}), zaptest.NewLogger(t))

	_, err := gw.Run(context.Background(), nil, inference.Request{})
	assert.Error(t, err)
}

func TestGateway_Spans(t *testing.T) {
	model := &mocks.FakeModel{}
	model.InferReturns(inference.Result{Splat: inference.Output{Present: true, Data: []byte("ply\n")}}, nil)

	spans := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	gw := inference.NewGateway(config.InferenceConfig{}, newFakeEngine(model), zaptest.NewLogger(t),
		inference.WithTracer(provider.Tracer("test")))

	h, err := gw.Acquire(context.Background())
	require.NoError(t, err)
	_, err = gw.Run(context.Background(), h, inference.Request{Seed: 3})
	require.NoError(t, err)

	ended := spans.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "inference.load", ended[0].Name())
	assert.Equal(t, "inference.run", ended[1].Name())
	assert.Contains(t, ended[1].Attributes(), attribute.Int64("inference.seed", 3))
	assert.Contains(t, ended[1].Attributes(), attribute.Bool("inference.splat", true))
}
