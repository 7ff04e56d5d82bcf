package orbit

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// ControlsOption is a functional option for configuring Controls.
type ControlsOption func(*controlsImpl)

// WithConfig replaces the default settings.
//
// Parameters:
//   - cfg: the settings to use
//
// Returns:
//   - ControlsOption: functional option to set the configuration
func WithConfig(cfg Config) ControlsOption {
	return func(c *controlsImpl) {
		c.cfg = cfg
	}
}

// WithTarget sets the initial orbit target.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - ControlsOption: functional option to set the target
func WithTarget(x, y, z float64) ControlsOption {
	return func(c *controlsImpl) {
		c.target = mgl64.Vec3{x, y, z}
	}
}

// WithSource subscribes the controls to an input source. The source's surface
// size also scales pixel deltas. Dispose releases the subscription.
//
// Parameters:
//   - src: the input source
//
// Returns:
//   - ControlsOption: functional option to attach the source
func WithSource(src input.Source) ControlsOption {
	return func(c *controlsImpl) {
		c.source = src
	}
}

// WithViewport sets the surface size used when no source is attached.
//
// Parameters:
//   - width, height: surface size in pixels
//
// Returns:
//   - ControlsOption: functional option to set the viewport size
func WithViewport(width, height int) ControlsOption {
	return func(c *controlsImpl) {
		c.width = width
		c.height = height
	}
}

// WithLogger sets the logger receiving diagnostics such as unsupported camera warnings.
//
// Parameters:
//   - logger: the logger (nil keeps log.Default())
//
// Returns:
//   - ControlsOption: functional option to set the logger
func WithLogger(logger *log.Logger) ControlsOption {
	return func(c *controlsImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source used for session timeouts.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ControlsOption: functional option to set the clock
func WithClock(now func() time.Time) ControlsOption {
	return func(c *controlsImpl) {
		if now != nil {
			c.now = now
		}
	}
}
