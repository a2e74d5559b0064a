package server

import (
	"errors"
	"net/http"

	inference "github.com/inference-gateway/sam3d/server/inference"
)

// Request failure kinds. Each maps to one HTTP status.
var (
	ErrUnavailable       = inference.ErrUnavailable
	ErrInvalidInput      = errors.New("invalid input")
	ErrInferenceFailure  = errors.New("inference failure")
	ErrUnsupportedOutput = errors.New("unsupported output")
	ErrNotImplemented    = errors.New("not implemented")
	ErrNotFound          = errors.New("not found")
)

// RequestError carries the message shown to the client together with the
// failure kind and the underlying cause
type RequestError struct {
	Kind    error
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Is matches the failure kind
func (e *RequestError) Is(target error) bool {
	return e.Kind == target
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func newRequestError(kind error, message string, cause error) *RequestError {
	return &RequestError{Kind: kind, Message: message, Err: cause}
}

func invalidInput(message string) *RequestError {
	return newRequestError(ErrInvalidInput, message, nil)
}

// StatusCode maps an error to the HTTP status returned to the client.
// Unclassified errors are internal.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotImplemented):
		return http.StatusNotImplemented
	case errors.Is(err, ErrInferenceFailure), errors.Is(err, ErrUnsupportedOutput):
		return http.StatusInternalServerError
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the text placed in the error response body
func ClientMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}
