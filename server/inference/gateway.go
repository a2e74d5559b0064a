package inference

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	config "github.com/inference-gateway/sam3d/server/config"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"
	singleflight "golang.org/x/sync/singleflight"
)

const tracerName = "github.com/inference-gateway/sam3d/server/inference"

// Recorder receives timing measurements from the gateway
type Recorder interface {
	RecordModelLoadDuration(ctx context.Context, provider string, durationMs float64, success bool)
	RecordInferenceDuration(ctx context.Context, provider string, durationMs float64, success bool)
}

// Handle is an acquired model. It stays valid for the lifetime of the process.
type Handle struct {
	model        Model
	LoadedAt     time.Time
	LoadDuration time.Duration
}

// Gateway owns the lazily loaded reconstruction model. The first successful
// Acquire loads the model; concurrent first calls share a single load.
// Failed loads are not remembered, so the next call retries.
type Gateway struct {
	engine      Engine
	reason      error
	opts        LoadOptions
	loadTimeout time.Duration
	logger      *zap.Logger
	recorder    Recorder
	tracer      trace.Tracer

	handle atomic.Pointer[Handle]
	group  singleflight.Group
}

// GatewayOption configures a Gateway
type GatewayOption func(*Gateway)

// WithRecorder sets the metrics recorder for load and inference timings
func WithRecorder(r Recorder) GatewayOption {
	return func(g *Gateway) {
		g.recorder = r
	}
}

// WithTracer overrides the tracer used for load and inference spans
func WithTracer(t trace.Tracer) GatewayOption {
	return func(g *Gateway) {
		g.tracer = t
	}
}

// NewGateway creates a gateway around the given engine. A nil engine yields
// a gateway that reports the capability as unavailable.
func NewGateway(cfg config.InferenceConfig, engine Engine, logger *zap.Logger, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		engine: engine,
		opts: LoadOptions{
			CheckpointPath: cfg.CheckpointPath,
			Compile:        cfg.Compile,
		},
		loadTimeout: cfg.LoadTimeout,
		logger:      logger,
		tracer:      otel.Tracer(tracerName),
	}
	if engine == nil {
		g.reason = fmt.Errorf("%w: no inference engine configured", ErrUnavailable)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGatewayFromConfig builds the configured engine and wraps it in a gateway.
// When the engine cannot be constructed the gateway is unavailable and the
// cause is reported by Acquire.
func NewGatewayFromConfig(cfg config.InferenceConfig, logger *zap.Logger, opts ...GatewayOption) *Gateway {
	engine, err := NewEngine(cfg, logger)
	if err != nil {
		logger.Warn("inference capability unavailable", zap.Error(err))
		g := NewGateway(cfg, nil, logger, opts...)
		if errors.Is(err, ErrUnavailable) {
			g.reason = err
		} else {
			g.reason = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return g
	}
	return NewGateway(cfg, engine, logger, opts...)
}

// Available reports whether the reconstruction capability exists at all.
// It never triggers a load.
func (g *Gateway) Available() bool {
	return g.engine != nil
}

// Loaded reports whether a model has been acquired
func (g *Gateway) Loaded() bool {
	return g.handle.Load() != nil
}

// Acquire returns the loaded model, loading it on first use
func (g *Gateway) Acquire(ctx context.Context) (*Handle, error) {
	if h := g.handle.Load(); h != nil {
		return h, nil
	}
	if g.engine == nil {
		return nil, g.reason
	}

	ch := g.group.DoChan("load", func() (any, error) {
		if h := g.handle.Load(); h != nil {
			return h, nil
		}
		return g.load(ctx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Handle), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *Gateway) load(ctx context.Context) (*Handle, error) {
	// The load is shared by every waiter, so it must outlive the caller that started it.
	loadCtx := context.WithoutCancel(ctx)
	if g.loadTimeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(loadCtx, g.loadTimeout)
		defer cancel()
	}

	loadCtx, span := g.tracer.Start(loadCtx, "inference.load",
		trace.WithAttributes(
			attribute.String("inference.provider", g.engine.Name()),
			attribute.String("inference.checkpoint", g.opts.CheckpointPath),
		))
	defer span.End()

	if err := CheckPrerequisites(g.opts.CheckpointPath); err != nil {
		g.logger.Warn("inference prerequisites missing", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	g.logger.Info("loading model",
		zap.String("provider", g.engine.Name()),
		zap.String("checkpoint", g.opts.CheckpointPath),
		zap.Bool("compile", g.opts.Compile))

	start := time.Now()
	model, err := g.engine.Load(loadCtx, g.opts)
	elapsed := time.Since(start)
	if g.recorder != nil {
		g.recorder.RecordModelLoadDuration(ctx, g.engine.Name(), float64(elapsed.Milliseconds()), err == nil)
	}
	if err != nil {
		g.logger.Error("failed to load model", zap.Error(err), zap.Duration("duration", elapsed))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	h := &Handle{model: model, LoadedAt: time.Now(), LoadDuration: elapsed}
	g.handle.Store(h)
	g.logger.Info("model loaded", zap.Duration("duration", elapsed))
	return h, nil
}

// Run forwards one request to the acquired model
func (g *Gateway) Run(ctx context.Context, h *Handle, req Request) (Result, error) {
	if h == nil || h.model == nil {
		return Result{}, fmt.Errorf("model not acquired")
	}

	provider := ""
	if g.engine != nil {
		provider = g.engine.Name()
	}

	ctx, span := g.tracer.Start(ctx, "inference.run",
		trace.WithAttributes(
			attribute.String("inference.provider", provider),
			attribute.Int64("inference.seed", req.Seed),
			attribute.Bool("inference.masked", req.Mask != nil),
		))
	defer span.End()

	if req.Image != nil {
		span.SetAttributes(
			attribute.Int("image.width", req.Image.Width),
			attribute.Int("image.height", req.Image.Height))
	}

	g.logger.Debug("running inference", zap.Int64("seed", req.Seed), zap.Bool("masked", req.Mask != nil))

	start := time.Now()
	result, err := h.model.Infer(ctx, req)
	elapsed := time.Since(start)
	if g.recorder != nil {
		g.recorder.RecordInferenceDuration(ctx, provider, float64(elapsed.Milliseconds()), err == nil)
	}
	if err != nil {
		g.logger.Error("inference failed", zap.Error(err), zap.Duration("duration", elapsed))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	span.SetAttributes(
		attribute.Bool("inference.splat", result.Splat.Present),
		attribute.Bool("inference.mesh", result.Mesh.Present))
	g.logger.Debug("inference completed", zap.Duration("duration", elapsed))
	return result, nil
}

// Close releases the engine
func (g *Gateway) Close() error {
	if g.engine == nil {
		return nil
	}
	return g.engine.Close()
}
