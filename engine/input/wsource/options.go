package wsource

import (
	"log"
	"net/http"
)

// Option is a functional option for configuring a Source.
type Option func(*Source)

// WithSize sets the initial surface size, used until a client sends a resize message.
//
// Parameters:
//   - width, height: surface size in pixels
//
// Returns:
//   - Option: functional option to set the surface size
func WithSize(width, height int) Option {
	return func(s *Source) {
		s.width.Store(int64(width))
		s.height.Store(int64(height))
	}
}

// WithCheckOrigin sets the origin policy applied during the upgrade. The
// default rejects cross-origin requests.
//
// Parameters:
//   - check: returns true if the request origin is acceptable
//
// Returns:
//   - Option: functional option to set the origin policy
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(s *Source) {
		s.upgrader.CheckOrigin = check
	}
}

// WithReadLimit caps the size of a single client message.
//
// Parameters:
//   - limit: maximum message size in bytes
//
// Returns:
//   - Option: functional option to set the read limit
func WithReadLimit(limit int64) Option {
	return func(s *Source) {
		s.readLimit = limit
	}
}

// WithLogger sets the logger for connection diagnostics.
//
// Parameters:
//   - logger: the logger (nil keeps log.Default())
//
// Returns:
//   - Option: functional option to set the logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}
