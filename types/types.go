package types

import "strings"

// Format identifies the on-disk representation of a generated 3D model.
type Format string

// Format enum values. The set is closed: PLY is backed by the Gaussian splat
// output of the model, GLB by its mesh output.
const (
	// FormatPLY is a Gaussian splatting point cloud
	FormatPLY Format = "ply"

	// FormatGLB is a binary glTF mesh
	FormatGLB Format = "glb"
)

// DefaultFormat is used when a request does not name a format
const DefaultFormat = FormatPLY

// DefaultSeed is used when a request does not carry a seed
const DefaultSeed int64 = 42

// SupportedFormats lists every recognised format in retrieval preference order
var SupportedFormats = []Format{FormatPLY, FormatGLB}

// ParseFormat normalises a client supplied format name. An empty value yields
// DefaultFormat. The second return value reports whether the name is recognised.
func ParseFormat(s string) (Format, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultFormat, true
	}
	f := Format(s)
	return f, f.IsValid()
}

// String returns the string representation of the Format
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the Format is one of the supported values
func (f Format) IsValid() bool {
	switch f {
	case FormatPLY, FormatGLB:
		return true
	default:
		return false
	}
}

// Extension returns the file extension, without the leading dot
func (f Format) Extension() string {
	return string(f)
}

// OutputKind returns the model output the format is exported from
func (f Format) OutputKind() OutputKind {
	if f == FormatGLB {
		return OutputKindMesh
	}
	return OutputKindSplat
}

// OutputKind names one of the outputs the reconstruction model may produce
type OutputKind string

const (
	OutputKindSplat OutputKind = "splat"
	OutputKindMesh  OutputKind = "mesh"
)

// Health status constants
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"
)

// Response header names carrying the artifact identity
const (
	HeaderModelID     = "X-Model-ID"
	HeaderModelFormat = "X-Model-Format"
)

// ServiceInfo is returned by the root endpoint
type ServiceInfo struct {
	Message        string `json:"message"`
	Status         string `json:"status"`
	Sam3DAvailable bool   `json:"sam3d_available"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status         string `json:"status"`
	Sam3DLoaded    *bool  `json:"sam3d_loaded,omitempty"`
	Sam3DAvailable *bool  `json:"sam3d_available,omitempty"`
	Error          string `json:"error,omitempty"`
}

// ConvertResponse is returned by the convert endpoint
type ConvertResponse struct {
	ModelURL string `json:"modelUrl"`
	ModelID  string `json:"modelId"`
	Format   Format `json:"format"`
	Status   string `json:"status"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error        string   `json:"error"`
	Message      string   `json:"message,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
}
