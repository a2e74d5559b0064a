package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/inference-gateway/sam3d/types"
	"go.uber.org/zap"
)

// SAM3DClient defines the interface of a SAM 3D API client
type SAM3DClient interface {
	// Service discovery
	GetInfo(ctx context.Context) (*types.ServiceInfo, error)
	GetHealth(ctx context.Context) (*types.HealthResponse, error)

	// Reconstruction
	Process(ctx context.Context, req ProcessRequest) (*ProcessResult, error)
	Convert(ctx context.Context, req ProcessRequest) (*ConvertResult, error)
	GetModel(ctx context.Context, modelID string) (*ModelResult, error)

	// Configuration
	SetTimeout(timeout time.Duration)
	SetHTTPClient(client *http.Client)
	GetBaseURL() string

	// Logger configuration
	SetLogger(logger *zap.Logger)
	GetLogger() *zap.Logger
}

var _ SAM3DClient = (*Client)(nil)

// ProcessRequest is one reconstruction request. Convert ignores Seed and Format.
type ProcessRequest struct {
	Image []byte
	// ImageContentType defaults to the sniffed type of Image
	ImageContentType string
	Mask             []byte
	Seed             *int64
	Format           types.Format
}

// ProcessResult is the artifact returned by the process endpoint
type ProcessResult struct {
	ModelID  string
	Format   types.Format
	ETag     string
	Filename string
	Data     []byte
}

// ConvertResult is the decoded response of the convert endpoint
type ConvertResult struct {
	types.ConvertResponse
	Data []byte
}

// ModelResult is a stored artifact
type ModelResult struct {
	ModelID string
	Format  types.Format
	ETag    string
	Data    []byte
}

// APIError is returned for every non-2xx response
type APIError struct {
	StatusCode   int
	Message      string
	Instructions []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sam3d api error (status %d): %s", e.StatusCode, e.Message)
}

// Config holds configuration options for the client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	UserAgent  string
	Headers    map[string]string
	// MaxRetries applies to GET requests only. Uploads are never retried
	// because each one mints a new model.
	MaxRetries int
	RetryDelay time.Duration
	Logger     *zap.Logger
}

// DefaultConfig returns a default configuration. The timeout is generous
// because a first request may wait for the model to load.
func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		Timeout:    15 * time.Minute,
		UserAgent:  "SAM3D-Go-Client/1.0",
		Headers:    make(map[string]string),
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
		Logger:     zap.NewNop(),
	}
}

// Client is a SAM 3D API client
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new client with default configuration
func NewClient(baseURL string) SAM3DClient {
	return NewClientWithConfig(DefaultConfig(baseURL))
}

// NewClientWithConfig creates a new client with custom configuration
func NewClientWithConfig(config *Config) SAM3DClient {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Headers == nil {
		config.Headers = make(map[string]string)
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.config.BaseURL, "/") + path
}

// GetInfo retrieves the service description
func (c *Client) GetInfo(ctx context.Context) (*types.ServiceInfo, error) {
	resp, err := c.get(ctx, "/")
	if err != nil {
		return nil, err
	}
	defer c.closeBody(resp)

	var info types.ServiceInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode service info: %w", err)
	}
	return &info, nil
}

// GetHealth retrieves the health report. Degraded and unhealthy services
// still answer 200, so inspect Status.
func (c *Client) GetHealth(ctx context.Context) (*types.HealthResponse, error) {
	c.logger.Debug("retrieving service health", zap.String("endpoint", "/health"))

	resp, err := c.get(ctx, "/health")
	if err != nil {
		return nil, err
	}
	defer c.closeBody(resp)

	var health types.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	if health.Status == "" {
		return nil, fmt.Errorf("health response missing status field")
	}

	switch health.Status {
	case types.HealthStatusHealthy, types.HealthStatusDegraded, types.HealthStatusUnhealthy:
	default:
		c.logger.Warn("health response contains unknown status", zap.String("status", health.Status))
	}

	c.logger.Debug("health check completed", zap.String("status", health.Status))
	return &health, nil
}

// Process uploads an image and returns the generated artifact
func (c *Client) Process(ctx context.Context, req ProcessRequest) (*ProcessResult, error) {
	fields := map[string]string{}
	if req.Seed != nil {
		fields["seed"] = strconv.FormatInt(*req.Seed, 10)
	}
	if req.Format != "" {
		fields["format"] = req.Format.String()
	}

	resp, err := c.upload(ctx, "/api/sam3d/process", req, fields)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	result := &ProcessResult{
		ModelID:  resp.Header.Get(types.HeaderModelID),
		Format:   types.Format(resp.Header.Get(types.HeaderModelFormat)),
		ETag:     resp.Header.Get("ETag"),
		Filename: ArtifactFilename(resp.Header.Get("Content-Disposition")),
		Data:     data,
	}
	c.logger.Debug("model generated",
		zap.String("model_id", result.ModelID),
		zap.Int("size", len(data)))
	return result, nil
}

// Convert uploads an image and returns the artifact inline
func (c *Client) Convert(ctx context.Context, req ProcessRequest) (*ConvertResult, error) {
	resp, err := c.upload(ctx, "/api/sam3d/convert", req, nil)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(resp)

	var result ConvertResult
	if err := json.NewDecoder(resp.Body).Decode(&result.ConvertResponse); err != nil {
		return nil, fmt.Errorf("failed to decode convert response: %w", err)
	}

	const prefix = "data:application/octet-stream;base64,"
	if !strings.HasPrefix(result.ModelURL, prefix) {
		return nil, fmt.Errorf("unexpected model url scheme")
	}
	result.Data, err = base64.StdEncoding.DecodeString(strings.TrimPrefix(result.ModelURL, prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to decode model url: %w", err)
	}
	return &result, nil
}

// GetModel downloads a stored artifact
func (c *Client) GetModel(ctx context.Context, modelID string) (*ModelResult, error) {
	resp, err := c.get(ctx, "/api/models/"+url.PathEscape(modelID))
	if err != nil {
		return nil, err
	}
	defer c.closeBody(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}
	return &ModelResult{
		ModelID: resp.Header.Get(types.HeaderModelID),
		Format:  types.Format(resp.Header.Get(types.HeaderModelFormat)),
		ETag:    resp.Header.Get("ETag"),
		Data:    data,
	}, nil
}

// ArtifactFilename extracts the filename from a Content-Disposition header
func ArtifactFilename(disposition string) string {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func (c *Client) upload(ctx context.Context, path string, req ProcessRequest, fields map[string]string) (*http.Response, error) {
	if len(req.Image) == 0 {
		return nil, fmt.Errorf("image is required")
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	contentType := req.ImageContentType
	if contentType == "" {
		contentType = http.DetectContentType(req.Image)
	}
	if err := writeFilePart(w, "image", "image", contentType, req.Image); err != nil {
		return nil, err
	}
	if len(req.Mask) > 0 {
		if err := writeFilePart(w, "mask", "mask", http.DetectContentType(req.Mask), req.Mask); err != nil {
			return nil, err
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	c.logger.Debug("uploading image", zap.String("path", path), zap.Int("size", len(req.Image)))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("upload failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func writeFilePart(w *multipart.Writer, field, filename, contentType string, data []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to write %s part: %w", field, err)
	}
	return nil
}

// get performs a GET with retries on transport errors
func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.config.RetryDelay * time.Duration(attempt)
			c.logger.Debug("waiting before retry",
				zap.String("path", path),
				zap.Duration("delay", delay),
				zap.Int("attempt", attempt+1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		c.setHeaders(httpReq)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			lastErr = err
			c.logger.Warn("request failed", zap.String("path", path), zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}
		if err := c.checkStatus(resp); err != nil {
			return nil, err
		}
		return resp, nil
	}

	return nil, fmt.Errorf("failed to send request after %d attempts: %w", c.config.MaxRetries+1, lastErr)
}

// checkStatus turns a non-2xx response into an *APIError and closes it
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer c.closeBody(resp)

	bodyBytes, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body types.ErrorResponse
	if err := json.Unmarshal(bodyBytes, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Instructions = body.Instructions
	} else {
		apiErr.Message = strings.TrimSpace(string(bodyBytes))
	}

	c.logger.Debug("unexpected status code",
		zap.Int("status_code", resp.StatusCode),
		zap.String("message", apiErr.Message))
	return apiErr
}

func (c *Client) closeBody(resp *http.Response) {
	if closeErr := resp.Body.Close(); closeErr != nil {
		c.logger.Warn("failed to close response body", zap.Error(closeErr))
	}
}

// setHeaders sets the common headers for HTTP requests
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.config.UserAgent)

	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}
}

// SetHTTPClient allows customizing the HTTP client
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
	c.config.HTTPClient = client
}

// SetTimeout sets the timeout for HTTP requests
func (c *Client) SetTimeout(timeout time.Duration) {
	c.config.Timeout = timeout
	c.httpClient.Timeout = timeout
}

// GetBaseURL returns the base URL of the service
func (c *Client) GetBaseURL() string {
	return c.config.BaseURL
}

// SetLogger sets the logger for the client
func (c *Client) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	c.config.Logger = logger
}

// GetLogger returns the logger of the client
func (c *Client) GetLogger() *zap.Logger {
	return c.logger
}
