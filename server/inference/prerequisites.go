package inference

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// MissingCheckpointsError reports an absent checkpoint manifest. It matches
// ErrUnavailable.
type MissingCheckpointsError struct {
	Path string
}

func (e *MissingCheckpointsError) Error() string {
	return fmt.Sprintf("SAM 3D checkpoints not found at %s. Please download checkpoints.", e.Path)
}

func (e *MissingCheckpointsError) Is(target error) bool {
	return target == ErrUnavailable
}

// CheckPrerequisites verifies that the checkpoint pipeline manifest exists and
// is a non-empty YAML mapping. An empty path disables the check.
func CheckPrerequisites(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingCheckpointsError{Path: path}
		}
		return fmt.Errorf("%w: failed to read checkpoint manifest %s: %v", ErrUnavailable, path, err)
	}

	var manifest map[string]any
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("%w: invalid checkpoint manifest %s: %v", ErrUnavailable, path, err)
	}
	if len(manifest) == 0 {
		return fmt.Errorf("%w: checkpoint manifest %s is empty", ErrUnavailable, path)
	}

	return nil
}
