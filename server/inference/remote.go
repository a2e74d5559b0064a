package inference

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	cbor "github.com/fxamacker/cbor/v2"
	config "github.com/inference-gateway/sam3d/server/config"
	zstd "github.com/klauspost/compress/zstd"
	zap "go.uber.org/zap"
)

const (
	contentTypeCBOR = "application/cbor"
	encodingZstd    = "zstd"

	loadPath  = "/v1/load"
	inferPath = "/v1/infer"
)

type loadRequest struct {
	Checkpoint string `cbor:"checkpoint"`
	Compile    bool   `cbor:"compile"`
}

type loadResponse struct {
	Model string `cbor:"model"`
}

type wireMask struct {
	Width  int       `cbor:"width"`
	Height int       `cbor:"height"`
	Values []float32 `cbor:"values"`
}

type inferRequest struct {
	Model  string    `cbor:"model"`
	Width  int       `cbor:"width"`
	Height int       `cbor:"height"`
	Pixels []byte    `cbor:"pixels"`
	Mask   *wireMask `cbor:"mask,omitempty"`
	Seed   int64     `cbor:"seed"`
}

// A missing or empty byte string means the worker did not produce that output kind.
type inferResponse struct {
	Splat []byte `cbor:"splat,omitempty"`
	Mesh  []byte `cbor:"mesh,omitempty"`
}

type errorResponse struct {
	Error string `cbor:"error"`
}

// RemoteEngine talks to a model worker over HTTP using CBOR bodies,
// optionally zstd compressed.
type RemoteEngine struct {
	baseURL  string
	client   *http.Client
	compress bool
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
	logger   *zap.Logger
}

var _ Engine = (*RemoteEngine)(nil)

// NewRemoteEngine creates an engine bound to the configured worker URL
func NewRemoteEngine(cfg config.InferenceConfig, logger *zap.Logger) (*RemoteEngine, error) {
	u, err := url.Parse(cfg.WorkerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid worker url %q: %w", cfg.WorkerURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid worker url %q: scheme must be http or https", cfg.WorkerURL)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}

	return &RemoteEngine{
		baseURL:  strings.TrimRight(u.String(), "/"),
		client:   &http.Client{Timeout: cfg.RequestTimeout},
		compress: cfg.Compression,
		encoder:  encoder,
		decoder:  decoder,
		logger:   logger,
	}, nil
}

// Name returns the provider name
func (e *RemoteEngine) Name() string {
	return "remote"
}

// Load asks the worker to load the checkpoint and returns a handle to it
func (e *RemoteEngine) Load(ctx context.Context, opts LoadOptions) (Model, error) {
	var resp loadResponse
	err := e.call(ctx, loadPath, loadRequest{
		Checkpoint: opts.CheckpointPath,
		Compile:    opts.Compile,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	if resp.Model == "" {
		return nil, fmt.Errorf("failed to load model: worker returned an empty model id")
	}

	e.logger.Debug("worker loaded model", zap.String("model", resp.Model))
	return &remoteModel{engine: e, id: resp.Model}, nil
}

// Close releases the zstd codecs
func (e *RemoteEngine) Close() error {
	e.decoder.Close()
	return e.encoder.Close()
}

func (e *RemoteEngine) call(ctx context.Context, path string, in, out any) error {
	body, err := cbor.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	if e.compress {
		body = e.encoder.EncodeAll(body, nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentTypeCBOR)
	req.Header.Set("Accept", contentTypeCBOR)
	req.Header.Set("Accept-Encoding", encodingZstd)
	if e.compress {
		req.Header.Set("Content-Encoding", encodingZstd)
	}

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("worker request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read worker response: %w", err)
	}
	if resp.Header.Get("Content-Encoding") == encodingZstd {
		raw, err = e.decoder.DecodeAll(raw, nil)
		if err != nil {
			return fmt.Errorf("failed to decompress worker response: %w", err)
		}
	}

	e.logger.Debug("worker call completed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode >= http.StatusBadRequest {
		var werr errorResponse
		if err := cbor.Unmarshal(raw, &werr); err == nil && werr.Error != "" {
			return fmt.Errorf("worker returned %d: %s", resp.StatusCode, werr.Error)
		}
		return fmt.Errorf("worker returned %d", resp.StatusCode)
	}

	if err := cbor.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode worker response: %w", err)
	}
	return nil
}

type remoteModel struct {
	engine *RemoteEngine
	id     string
}

func (m *remoteModel) Infer(ctx context.Context, req Request) (Result, error) {
	if req.Image == nil {
		return Result{}, fmt.Errorf("image is required")
	}

	in := inferRequest{
		Model:  m.id,
		Width:  req.Image.Width,
		Height: req.Image.Height,
		Pixels: req.Image.Pix,
		Seed:   req.Seed,
	}
	if req.Mask != nil {
		in.Mask = &wireMask{
			Width:  req.Mask.Width,
			Height: req.Mask.Height,
			Values: req.Mask.Values,
		}
	}

	var out inferResponse
	if err := m.engine.call(ctx, inferPath, in, &out); err != nil {
		return Result{}, err
	}

	return Result{
		Splat: Output{Present: len(out.Splat) > 0, Data: out.Splat},
		Mesh:  Output{Present: len(out.Mesh) > 0, Data: out.Mesh},
	}, nil
}
