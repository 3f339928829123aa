package ecs

import (
	"github.com/google/uuid"
)

// Universe is an isolated entity–component–system runtime: one Storage and
// one Scheduler bound to it. All Storage and Scheduler methods are available
// on the Universe directly.
//
// A Universe is not safe for concurrent use.
type Universe struct {
	*Storage
	*Scheduler

	id uuid.UUID
}

// UniverseStats combines storage and scheduler statistics.
type UniverseStats struct {
	Universe  uuid.UUID
	Storage   *StorageStats
	Scheduler *SchedulerStats
}

// NewUniverse creates an empty universe. Every universe has its own entity id
// generator, so ids from different universes are unrelated.
func NewUniverse(opts ...Option) *Universe {
	id := uuid.New()
	cfg := newConfig(opts)
	cfg.logger = cfg.logger.With("universe", id.String())

	storage := NewStorage(cfg.registry, withConfig(cfg))
	return &Universe{
		Storage:   storage,
		Scheduler: NewScheduler(storage, withConfig(cfg)),
		id:        id,
	}
}

// withConfig passes an already resolved config to a nested constructor.
func withConfig(cfg *config) Option {
	return func(c *config) {
		*c = *cfg
	}
}

// ID returns the universe's identity, used to label its log lines.
func (u *Universe) ID() uuid.UUID {
	return u.id
}

// Stats returns a snapshot of storage and scheduler statistics.
func (u *Universe) Stats() UniverseStats {
	return UniverseStats{
		Universe:  u.id,
		Storage:   u.CollectStats(),
		Scheduler: u.GetStats(),
	}
}
