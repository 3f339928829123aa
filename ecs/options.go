package ecs

import (
	"log/slog"
	"time"
)

type config struct {
	clock    func() time.Time
	ids      IDGenerator
	logger   *slog.Logger
	registry *ComponentRegistry
}

func newConfig(opts []Option) *config {
	cfg := &config{
		clock:  time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ids == nil {
		cfg.ids = SequentialIDs()
	}
	return cfg
}

// Option configures a Universe, Storage or Scheduler.
type Option func(*config)

// WithClock replaces time.Now as the source of update timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithIDGenerator replaces the sequential entity id generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(c *config) {
		c.ids = ids
	}
}

// WithLogger sets the logger used for lifecycle and failure events.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithComponentRegistry enables payload type checks for registered component names.
func WithComponentRegistry(registry *ComponentRegistry) Option {
	return func(c *config) {
		c.registry = registry
	}
}
