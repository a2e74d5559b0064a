package inference

import (
	"context"
	"errors"
	"fmt"

	config "github.com/inference-gateway/sam3d/server/config"
	zap "go.uber.org/zap"
)

// ErrUnavailable reports that the reconstruction capability or its
// prerequisites are missing.
var ErrUnavailable = errors.New("inference capability unavailable")

// Engine gives access to the external reconstruction model
//
//go:generate counterfeiter -o ../mocks/fake_engine.go . Engine
type Engine interface {
	// Name returns the provider name of the engine
	Name() string

	// Load loads the model. It is expensive and called at most once per
	// successful acquisition.
	Load(ctx context.Context, opts LoadOptions) (Model, error)

	// Close releases the resources held by the engine
	Close() error
}

// Model is a loaded reconstruction model
//
//go:generate counterfeiter -o ../mocks/fake_model.go . Model
type Model interface {
	// Infer runs one forward pass. It blocks until the model returns.
	Infer(ctx context.Context, req Request) (Result, error)
}

// NewEngine creates the engine selected by the configuration
func NewEngine(cfg config.InferenceConfig, logger *zap.Logger) (Engine, error) {
	switch cfg.Provider {
	case "remote":
		engine, err := NewRemoteEngine(cfg, logger)
		if err != nil {
			return nil, err
		}
		return engine, nil
	case "none", "":
		return nil, fmt.Errorf("%w: no inference provider configured", ErrUnavailable)
	default:
		return nil, fmt.Errorf("%w: unsupported inference provider: %s", ErrUnavailable, cfg.Provider)
	}
}
