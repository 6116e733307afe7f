package motion

import (
	"log/slog"
	"time"

	"github.com/gogpu/dry"
)

// DefaultInterval is the update interval used when WithInterval is not given.
const DefaultInterval = 100 * time.Millisecond

// Option configures a Manager during creation.
type Option func(*options)

type options struct {
	interval time.Duration
	logger   *slog.Logger
	onUpdate func(Reading)
}

func defaultOptions() options {
	return options{
		interval: DefaultInterval,
		logger:   nil, // resolved to dry.Logger() in NewManager
	}
}

// WithInterval sets the initial update interval. Values <= 0 are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithLogger sets the logger used for lifecycle and sensor error messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithHandler registers fn to be called with every reading while running.
// fn runs on the sensor's goroutine; it must not block or call Start,
// Stop or Running on the same Manager.
func WithHandler(fn func(Reading)) Option {
	return func(o *options) {
		o.onUpdate = fn
	}
}

func (o *options) resolveLogger() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return dry.Logger()
}
