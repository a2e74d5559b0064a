package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: http.StatusOK},
		{name: "invalid input", err: invalidInput("File must be an image"), expected: http.StatusBadRequest},
		{name: "not found", err: ErrNotFound, expected: http.StatusNotFound},
		{name: "not implemented", err: newRequestError(ErrNotImplemented, "GLB export not yet implemented", nil), expected: http.StatusNotImplemented},
		{name: "unavailable", err: fmt.Errorf("%w: checkpoints not found", ErrUnavailable), expected: http.StatusServiceUnavailable},
		{name: "inference failure", err: newRequestError(ErrInferenceFailure, "Failed to process image: boom", errors.New("boom")), expected: http.StatusInternalServerError},
		{
			name:     "inference failure wrapping unavailable stays internal",
			err:      newRequestError(ErrInferenceFailure, "Failed to process image", ErrUnavailable),
			expected: http.StatusInternalServerError,
		},
		{name: "unsupported output", err: newRequestError(ErrUnsupportedOutput, "Gaussian Splatting output not available", nil), expected: http.StatusInternalServerError},
		{name: "unclassified", err: errors.New("disk full"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCode(tt.err))
		})
	}
}

func TestRequestError(t *testing.T) {
	cause := errors.New("CUDA out of memory")
	err := newRequestError(ErrInferenceFailure, "Failed to process image: CUDA out of memory", cause)

	assert.ErrorIs(t, err, ErrInferenceFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "Failed to process image: CUDA out of memory", ClientMessage(err))
	assert.Equal(t, "disk full", ClientMessage(errors.New("disk full")))
	assert.Equal(t, "Format must be one of: ply, glb", ClientMessage(fmt.Errorf("wrapped: %w", invalidInput("Format must be one of: ply, glb"))))
}
