package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	ServiceName     string          // Build-time metadata, not configurable via environment
	ServiceVersion  string          // Build-time metadata, not configurable via environment
	Debug           bool            `env:"DEBUG,default=false"`
	ServerConfig    ServerConfig    `env:",prefix=SERVER_"`
	InferenceConfig InferenceConfig `env:",prefix=INFERENCE_"`
	StorageConfig   StorageConfig   `env:",prefix=STORAGE_"`
	TelemetryConfig TelemetryConfig `env:",prefix=TELEMETRY_"`
	EventsConfig    EventsConfig    `env:",prefix=EVENTS_"`
}

// TLSConfig holds TLS configuration
type TLSConfig struct {
	Enable   bool   `env:"ENABLE,default=false"`
	CertPath string `env:"CERT_PATH" description:"TLS certificate path"`
	KeyPath  string `env:"KEY_PATH" description:"TLS key path"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port                  string        `env:"PORT,default=8000" description:"HTTP server port"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=0s" description:"HTTP server read timeout (0 = none)"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=0s" description:"HTTP server write timeout (0 = none, inference has no deadline)"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=120s" description:"HTTP server idle timeout"`
	MaxUploadSize         int64         `env:"MAX_UPLOAD_SIZE,default=67108864" description:"Maximum multipart request size in bytes"`
	DisableHealthcheckLog bool          `env:"DISABLE_HEALTHCHECK_LOG,default=true" description:"Disable logging for health check requests"`
	CORSAllowedOrigins    []string      `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:3000,http://127.0.0.1:3000" description:"Origins allowed to call the API from a browser"`
	TLSConfig             TLSConfig     `env:",prefix=TLS_"`
}

// InferenceConfig holds the configuration of the external reconstruction model
type InferenceConfig struct {
	Provider       string        `env:"PROVIDER,default=remote" description:"Inference engine provider (remote, none)"`
	WorkerURL      string        `env:"WORKER_URL,default=http://localhost:8001" description:"Base URL of the model worker"`
	CheckpointPath string        `env:"CHECKPOINT_PATH,default=./support/sam-3d-objects/checkpoints/hf/pipeline.yaml" description:"Checkpoint pipeline manifest that must exist before the model is loaded"`
	Compile        bool          `env:"COMPILE,default=false" description:"Ask the worker to compile the model on load"`
	Compression    bool          `env:"COMPRESSION,default=true" description:"zstd-compress inference payloads sent to the worker"`
	LoadTimeout    time.Duration `env:"LOAD_TIMEOUT,default=10m" description:"Maximum time to wait for the model to load"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=0s" description:"Worker request timeout (0 = none)"`
}

// StorageConfig holds the content store configuration
type StorageConfig struct {
	Provider   string `env:"PROVIDER,default=filesystem" description:"Storage provider (filesystem, minio, redis, pebble)"`
	BasePath   string `env:"BASE_PATH,default=./outputs" description:"Output directory for filesystem storage"`
	Endpoint   string `env:"ENDPOINT" description:"Storage endpoint (for MinIO, S3)"`
	AccessKey  string `env:"ACCESS_KEY" description:"Storage access key"`
	SecretKey  string `env:"SECRET_KEY" description:"Storage secret key"`
	BucketName string `env:"BUCKET_NAME,default=models" description:"Storage bucket name"`
	UseSSL     bool   `env:"USE_SSL,default=true" description:"Use SSL for storage connections"`
	RedisURL   string `env:"REDIS_URL,default=redis://localhost:6379/0" description:"Redis connection URL"`
	KeyPrefix  string `env:"KEY_PREFIX,default=sam3d:" description:"Key prefix for redis storage"`
	PebblePath string `env:"PEBBLE_PATH,default=./outputs.db" description:"Directory of the embedded pebble store"`
}

// MetricsConfig holds metrics server configuration
type MetricsConfig struct {
	Port         string        `env:"PORT,default=9090" description:"Metrics server port"`
	Host         string        `env:"HOST,default=" description:"Metrics server host (empty for all interfaces)"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s" description:"Metrics server read timeout"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s" description:"Metrics server write timeout"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=60s" description:"Metrics server idle timeout"`
}

// TracingConfig holds OTLP tracing configuration
type TracingConfig struct {
	Enable     bool    `env:"ENABLE,default=false" description:"Export traces over OTLP gRPC"`
	Endpoint   string  `env:"ENDPOINT,default=localhost:4317" description:"OTLP gRPC collector endpoint"`
	SampleRate float64 `env:"SAMPLE_RATE,default=1.0" description:"Trace sampling ratio"`
}

// TelemetryConfig holds telemetry configuration
type TelemetryConfig struct {
	Enable        bool          `env:"ENABLE,default=false" description:"Enable telemetry collection"`
	MetricsConfig MetricsConfig `env:",prefix=METRICS_"`
	TracingConfig TracingConfig `env:",prefix=TRACING_"`
}

// EventsConfig holds the CloudEvents sink configuration
type EventsConfig struct {
	Enable  bool   `env:"ENABLE,default=false" description:"Publish a CloudEvent for every stored model"`
	SinkURL string `env:"SINK_URL" description:"HTTP endpoint receiving CloudEvents"`
	Source  string `env:"SOURCE,default=sam3d/api" description:"CloudEvents source attribute"`
}

// Load loads configuration from environment variables, merging with the provided base config.
func Load(ctx context.Context, baseConfig *Config) (*Config, error) {
	return LoadWithLookuper(ctx, baseConfig, envconfig.OsLookuper())
}

// LoadWithLookuper creates and loads configuration using a custom lookuper and merges with user config
func LoadWithLookuper(ctx context.Context, baseConfig *Config, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if baseConfig != nil {
		cfg = *baseConfig
	}

	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	})
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewWithDefaults creates a new config with defaults applied from struct tags.
func NewWithDefaults(ctx context.Context, baseConfig *Config) (*Config, error) {
	return LoadWithLookuper(ctx, baseConfig, &emptyLookuper{})
}

// emptyLookuper ensures that only default values from struct tags are used
type emptyLookuper struct{}

func (e *emptyLookuper) Lookup(key string) (string, bool) {
	return "", false
}

// Validate validates the configuration and applies corrections for invalid values
func (c *Config) Validate() error {
	c.InferenceConfig.Provider = strings.ToLower(strings.TrimSpace(c.InferenceConfig.Provider))
	c.StorageConfig.Provider = strings.ToLower(strings.TrimSpace(c.StorageConfig.Provider))

	if c.InferenceConfig.Provider == "remote" && c.InferenceConfig.WorkerURL == "" {
		return fmt.Errorf("inference worker url is required for the remote provider")
	}

	switch c.StorageConfig.Provider {
	case "filesystem", "minio", "redis", "pebble":
	default:
		return fmt.Errorf("unsupported storage provider: %s", c.StorageConfig.Provider)
	}

	if c.ServerConfig.MaxUploadSize <= 0 {
		c.ServerConfig.MaxUploadSize = 64 << 20
	}

	rate := c.TelemetryConfig.TracingConfig.SampleRate
	if rate < 0 || rate > 1 {
		return fmt.Errorf("invalid tracing sample rate %v: must be between 0 and 1", rate)
	}

	if c.ServerConfig.TLSConfig.Enable && (c.ServerConfig.TLSConfig.CertPath == "" || c.ServerConfig.TLSConfig.KeyPath == "") {
		return fmt.Errorf("tls is enabled but certificate or key path is missing")
	}

	return nil
}
