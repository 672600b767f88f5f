package numcast

import "log/slog"

// Mode selects how [Outcome.AssumedLossless] treats a lossy cast.
type Mode uint8

const (
	// Debug panics on a lossy cast.
	Debug Mode = iota
	// Release returns the plain conversion result.
	Release
)

func (m Mode) String() string {
	switch m {
	case Debug:
		return "debug"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

type options struct {
	mode   Mode
	logger *slog.Logger
}

// Option configures behavior for [Outcome.AssumedLossless].
type Option func(*options)

// WithMode overrides [DefaultMode].
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithLogger sets a logger that records, at debug level, every lossy cast
// accepted in [Release] mode.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{mode: DefaultMode}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
