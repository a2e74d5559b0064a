package server

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gin "github.com/gin-gonic/gin"
	zap "go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	inference "github.com/inference-gateway/sam3d/server/inference"
	types "github.com/inference-gateway/sam3d/types"
)

const (
	formFieldImage  = "image"
	formFieldMask   = "mask"
	formFieldSeed   = "seed"
	formFieldFormat = "format"
)

// uploadScope owns the temp directory holding one request's uploads
type uploadScope struct {
	dir    string
	logger *zap.Logger
}

func newUploadScope(logger *zap.Logger) (*uploadScope, error) {
	dir, err := os.MkdirTemp("", "sam3d-upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &uploadScope{dir: dir, logger: logger}, nil
}

// Close removes the directory and everything written into it
func (s *uploadScope) Close() {
	if err := os.RemoveAll(s.dir); err != nil {
		s.logger.Warn("failed to remove upload directory", zap.String("dir", s.dir), zap.Error(err))
	}
}

// save copies an uploaded part into the scope and returns its path
func (s *uploadScope) save(fh *multipart.FileHeader, name string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	path := filepath.Join(s.dir, name)
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}
	return path, nil
}

func decodeImageFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = f.Close() }()
	return image.Decode(f)
}

// processInput is a validated reconstruction request
type processInput struct {
	format  types.Format
	request inference.Request
}

// formOptions controls which client fields are honoured
type formOptions struct {
	// fixed ignores the seed and format fields and uses the defaults
	fixed bool
}

// parseProcessForm validates a multipart reconstruction request. Checks run
// in a fixed order so that the first failing rule decides the response.
func parseProcessForm(c *gin.Context, scope *uploadScope, maxSize int64, opts formOptions) (*processInput, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)

	form, err := c.MultipartForm()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, invalidInput(fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit))
		}
		return nil, newRequestError(ErrInvalidInput, "Invalid multipart form", err)
	}

	imageFile := firstFile(form, formFieldImage)
	if imageFile == nil {
		return nil, invalidInput("No image file provided")
	}
	if !strings.HasPrefix(imageFile.Header.Get("Content-Type"), "image/") {
		return nil, invalidInput("File must be an image")
	}

	seed := types.DefaultSeed
	format := types.DefaultFormat
	if !opts.fixed {
		if raw, ok := firstValue(form, formFieldSeed); ok && strings.TrimSpace(raw) != "" {
			seed, err = strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				return nil, invalidInput(fmt.Sprintf("Seed must be an integer, got %q", raw))
			}
		}

		raw, _ := firstValue(form, formFieldFormat)
		f, ok := types.ParseFormat(raw)
		if !ok {
			return nil, invalidInput(fmt.Sprintf("Unsupported format: %s. Use 'ply' or 'glb'", f))
		}
		format = f
	}

	if format == types.FormatGLB {
		return nil, newRequestError(ErrNotImplemented, "GLB export not yet implemented. Use 'ply' format.", nil)
	}

	imagePath, err := scope.save(imageFile, "image")
	if err != nil {
		return nil, err
	}
	decoded, kind, err := decodeImageFile(imagePath)
	if err != nil {
		return nil, newRequestError(ErrInvalidInput, "Invalid image file", err)
	}
	img := inference.NewImage(decoded)
	scope.logger.Debug("decoded image",
		zap.String("codec", kind),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height))

	var mask *inference.Mask
	if maskFile := firstFile(form, formFieldMask); maskFile != nil {
		maskPath, err := scope.save(maskFile, "mask")
		if err != nil {
			return nil, err
		}
		decodedMask, _, err := decodeImageFile(maskPath)
		if err != nil {
			return nil, newRequestError(ErrInvalidInput, "Invalid mask file", err)
		}
		mask = inference.NewMask(decodedMask)
		if mask.Width != img.Width || mask.Height != img.Height {
			return nil, invalidInput(fmt.Sprintf("Mask dimensions %dx%d do not match image dimensions %dx%d",
				mask.Width, mask.Height, img.Width, img.Height))
		}
	}

	return &processInput{
		format: format,
		request: inference.Request{
			Image: img,
			Mask:  mask,
			Seed:  seed,
		},
	}, nil
}

func firstFile(form *multipart.Form, field string) *multipart.FileHeader {
	if files := form.File[field]; len(files) > 0 {
		return files[0]
	}
	return nil
}

func firstValue(form *multipart.Form, field string) (string, bool) {
	if values := form.Value[field]; len(values) > 0 {
		return values[0], true
	}
	return "", false
}
