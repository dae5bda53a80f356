package lockpath

import "github.com/akashsoni01/keypaths/logger"

// Config holds the ambient collaborators of a lock-bearing path. Nothing in
// it affects traversal semantics: logging is debug-level acquisition tracing
// and metrics are observation only. Absence is never logged or retried.
type Config struct {
	Logger  logger.Logger
	Metrics Metrics
	Clock   Clock
}

// Option applies a configuration setting to a lock-bearing path during
// construction.
type Option func(*Config)

// DefaultConfig returns a Config with no-op collaborators and the standard
// clock.
func DefaultConfig() Config {
	return Config{
		Logger:  logger.NewNoOpLogger(),
		Metrics: NewNoOpMetrics(),
		Clock:   NewStandardClock(),
	}
}

// WithLogger sets the logger used for acquisition tracing.
func WithLogger(l logger.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(c *Config) {
		if m != nil {
			c.Metrics = m
		}
	}
}

// WithClock sets the clock used for latency and hold-duration measurement.
func WithClock(clk Clock) Option {
	return func(c *Config) {
		if clk != nil {
			c.Clock = clk
		}
	}
}

// newConfig applies opts over the defaults.
func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
