package server

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	gootel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"

	types "github.com/inference-gateway/sam3d/types"
)

const tracerName = "github.com/inference-gateway/sam3d/server"

// RequestState is the lifecycle position of one reconstruction request
type RequestState string

const (
	StateReceived  RequestState = "received"
	StateValidated RequestState = "validated"
	StateInferred  RequestState = "inferred"
	StatePersisted RequestState = "persisted"
	StateResponded RequestState = "responded"
	StateFailed    RequestState = "failed"
)

const unavailableMessage = "SAM 3D is not available. Please install SAM 3D and checkpoints."

var unavailableInstructions = []string{
	"1. Start the model worker and point INFERENCE_WORKER_URL at it",
	"2. Ensure SAM 3D is installed on the worker host",
	"3. Download model checkpoints to support/sam-3d-objects/checkpoints/hf/",
}

// reconstruction tracks one request through the pipeline
type reconstruction struct {
	operation string
	stage     RequestState
	started   time.Time
}

func (r *reconstruction) advance(to RequestState) {
	r.stage = to
}

// reconstruct runs validation, inference and persistence for one multipart
// request. The returned model is already stored.
func (s *SAM3DServerImpl) reconstruct(c *gin.Context, operation string, opts formOptions) (*StoredModel, error) {
	rec := &reconstruction{operation: operation, stage: StateReceived, started: time.Now()}

	ctx, span := gootel.Tracer(tracerName).Start(c.Request.Context(), "sam3d."+operation)
	defer span.End()

	model, err := s.runPipeline(ctx, c, rec, opts)

	state := StateResponded
	if err != nil {
		state = StateFailed
		span.RecordError(err)
		span.SetStatus(codes.Error, ClientMessage(err))
	}
	span.SetAttributes(
		attribute.String("sam3d.state", string(state)),
		attribute.String("sam3d.stage", string(rec.stage)))

	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("state", string(state)),
		zap.String("stage", string(rec.stage)),
		zap.Duration("duration", time.Since(rec.started)),
	}
	switch {
	case err == nil:
		s.logger.Info("reconstruction completed", append(fields, zap.String("model_id", model.ID))...)
	case StatusCode(err) >= http.StatusInternalServerError:
		s.logger.Error("reconstruction failed", append(fields, zap.Error(err))...)
	default:
		s.logger.Info("reconstruction rejected", append(fields, zap.Error(err))...)
	}

	if s.otel != nil {
		s.otel.RecordRequestOutcome(ctx, operation, string(state), string(rec.stage))
	}
	return model, err
}

func (s *SAM3DServerImpl) runPipeline(ctx context.Context, c *gin.Context, rec *reconstruction, opts formOptions) (*StoredModel, error) {
	if !s.gateway.Available() {
		return nil, newRequestError(ErrUnavailable, unavailableMessage, nil)
	}

	scope, err := newUploadScope(s.logger)
	if err != nil {
		return nil, err
	}
	defer scope.Close()

	input, err := parseProcessForm(c, scope, s.cfg.ServerConfig.MaxUploadSize, opts)
	if err != nil {
		return nil, err
	}
	rec.advance(StateValidated)

	handle, err := s.gateway.Acquire(ctx)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, newRequestError(ErrUnavailable, err.Error(), nil)
		}
		return nil, newRequestError(ErrInferenceFailure, "Failed to process image: "+err.Error(), err)
	}

	result, err := s.gateway.Run(ctx, handle, input.request)
	if err != nil {
		return nil, newRequestError(ErrInferenceFailure, "Failed to process image: "+err.Error(), err)
	}
	rec.advance(StateInferred)

	output := result.Splat
	if input.format.OutputKind() == types.OutputKindMesh {
		output = result.Mesh
	}
	if !output.Present || len(output.Data) == 0 {
		return nil, newRequestError(ErrUnsupportedOutput, outputMissingMessage(input.format), nil)
	}

	model, err := s.artifacts.Persist(ctx, input.format, output.Data)
	if err != nil {
		return nil, newRequestError(ErrInferenceFailure, "Failed to process image: "+err.Error(), err)
	}
	rec.advance(StatePersisted)

	if s.otel != nil {
		s.otel.RecordArtifactSize(ctx, input.format.String(), int64(len(model.Data)))
	}
	return model, nil
}

func outputMissingMessage(format types.Format) string {
	if format.OutputKind() == types.OutputKindMesh {
		return "Mesh output not available"
	}
	return "Gaussian Splatting output not available"
}

// handleProcess returns the generated artifact as a download
func (s *SAM3DServerImpl) handleProcess(c *gin.Context) {
	model, err := s.reconstruct(c, "process", formOptions{})
	if err != nil {
		s.writeError(c, err)
		return
	}

	if etag, err := model.ETag(); err == nil {
		c.Header("ETag", etag)
	} else {
		s.logger.Warn("failed to compute etag", zap.String("model_id", model.ID), zap.Error(err))
	}
	c.Header(types.HeaderModelID, model.ID)
	c.Header(types.HeaderModelFormat, model.Format.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", model.Name()))
	c.Data(http.StatusOK, "application/octet-stream", model.Data)
}

// handleConvert returns the generated artifact inline as a data URL
func (s *SAM3DServerImpl) handleConvert(c *gin.Context) {
	model, err := s.reconstruct(c, "convert", formOptions{fixed: true})
	if err != nil {
		status := StatusCode(err)
		body := types.ErrorResponse{Error: ClientMessage(err)}
		if status == http.StatusServiceUnavailable {
			body.Message = "The model worker is not running or SAM 3D is not configured."
			body.Instructions = unavailableInstructions
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, types.ConvertResponse{
		ModelURL: "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(model.Data),
		ModelID:  model.ID,
		Format:   model.Format,
		Status:   "completed",
	})
}

// handleGetModel serves a stored artifact by id
func (s *SAM3DServerImpl) handleGetModel(c *gin.Context) {
	ctx, span := gootel.Tracer(tracerName).Start(c.Request.Context(), "sam3d.retrieve",
		trace.WithAttributes(attribute.String("sam3d.model_id", c.Param("model_id"))))
	defer span.End()

	model, err := s.artifacts.Locate(ctx, c.Param("model_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			err = newRequestError(ErrNotFound, "Model not found", err)
		} else {
			err = newRequestError(nil, "Failed to retrieve model", err)
		}
		span.RecordError(err)
		s.writeError(c, err)
		return
	}

	if etag, err := model.ETag(); err == nil {
		if c.GetHeader("If-None-Match") == etag {
			c.Header("ETag", etag)
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
	}
	c.Header(types.HeaderModelID, model.ID)
	c.Header(types.HeaderModelFormat, model.Format.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", model.Name()))
	c.Data(http.StatusOK, "application/octet-stream", model.Data)
}

func (s *SAM3DServerImpl) writeError(c *gin.Context, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, types.ErrorResponse{Error: ClientMessage(err)})
}

// healthStatus attempts to acquire the model and reports the outcome
func (s *SAM3DServerImpl) healthStatus(ctx context.Context) types.HealthResponse {
	if !s.gateway.Available() {
		return types.HealthResponse{Status: types.HealthStatusDegraded, Sam3DAvailable: boolPtr(false)}
	}

	// Missing checkpoints land here too: the capability exists but cannot load
	if _, err := s.gateway.Acquire(ctx); err != nil {
		return types.HealthResponse{Status: types.HealthStatusUnhealthy, Error: err.Error()}
	}
	return types.HealthResponse{Status: types.HealthStatusHealthy, Sam3DLoaded: boolPtr(true)}
}

func boolPtr(b bool) *bool {
	return &b
}
