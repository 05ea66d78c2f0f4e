//go:build !darwin && !linux

package input

import (
	"fmt"
	"os"
)

// mapFile reads the whole file on platforms without a mapping path here.
func mapFile(path string, _ int64) ([]byte, bool, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, false, func() error { return nil }, nil
}
