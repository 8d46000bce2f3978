package layout

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine) error

// WithFrameInterval sets the coalescing window for deferred recomputation.
// Default is 16ms, the equivalent of a 60fps animation-frame tick.
func WithFrameInterval(d time.Duration) EngineOption {
	return func(e *Engine) error {
		if d <= 0 {
			return fmt.Errorf("frame interval must be positive, got %v", d)
		}
		e.frameInterval = d
		return nil
	}
}

// WithLogger sets a structured logger for pass-level diagnostics.
// By default the engine does not log.
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}
