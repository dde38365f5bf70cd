//go:build !tinygo && !cgo

package hal

import (
	"fmt"

	"go.uber.org/zap"
)

func RunWindow(_ func(h HAL) func() error, _ WindowConfig, _ *zap.Logger) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
