package ecs

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Scheduler owns the registered systems and runs them in registration order.
type Scheduler struct {
	storage *Storage
	systems []*systemEntry
	byName  map[string]*systemEntry

	clock        func() time.Time
	createdAt    time.Time
	lastUpdateAt time.Time
	updates      int64

	logger *slog.Logger
}

// NewScheduler creates a scheduler for the given storage. Time is measured
// from this call.
func NewScheduler(storage *Storage, opts ...Option) *Scheduler {
	cfg := newConfig(opts)
	now := cfg.clock()
	return &Scheduler{
		storage:      storage,
		byName:       make(map[string]*systemEntry),
		clock:        cfg.clock,
		createdAt:    now,
		lastUpdateAt: now,
		logger:       cfg.logger,
	}
}

func (s *Scheduler) lookup(name string) (*systemEntry, error) {
	entry, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	return entry, nil
}

// RegisterSystem appends a system to the update order. It starts unfrozen,
// unscheduled and with no pending commands.
func (s *Scheduler) RegisterSystem(name string, system System) error {
	if _, ok := s.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSystem, name)
	}
	entry := newSystemEntry(name, system)
	s.systems = append(s.systems, entry)
	s.byName[name] = entry
	s.logger.Debug("system registered", "system", name)
	return nil
}

// UnregisterSystem removes a system with its pending commands and schedule.
// If called during an update, the system does not run later in that update.
func (s *Scheduler) UnregisterSystem(name string) error {
	entry, err := s.lookup(name)
	if err != nil {
		return err
	}
	entry.removed = true
	delete(s.byName, name)
	s.systems = slices.DeleteFunc(s.systems, func(e *systemEntry) bool { return e == entry })
	s.logger.Debug("system unregistered", "system", name)
	return nil
}

// IsSystemRegistered reports whether name is registered.
func (s *Scheduler) IsSystemRegistered(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Systems returns the registered system names in update order.
func (s *Scheduler) Systems() []string {
	names := make([]string, len(s.systems))
	for i, entry := range s.systems {
		names[i] = entry.name
	}
	return names
}

// ScheduleSystem limits a system to one run per interval units. With Updates it
// runs every interval-th update; with Seconds it runs once at least interval
// seconds of delta time have accumulated since its last run. A newly scheduled
// system runs at its next opportunity.
func (s *Scheduler) ScheduleSystem(name string, interval float64, unit Unit) error {
	entry, err := s.lookup(name)
	if err != nil {
		return err
	}
	sched, err := newSchedule(interval, unit)
	if err != nil {
		return err
	}
	entry.schedule = sched
	s.logger.Debug("system scheduled", "system", name, "interval", interval, "unit", unit.String())
	return nil
}

// UnscheduleSystem makes a system run on every update again.
func (s *Scheduler) UnscheduleSystem(name string) error {
	entry, err := s.lookup(name)
	if err != nil {
		return err
	}
	entry.schedule = nil
	return nil
}

// FreezeSystem skips the named system on subsequent updates until unfrozen.
func (s *Scheduler) FreezeSystem(name string) error {
	entry, err := s.lookup(name)
	if err != nil {
		return err
	}
	s.setFrozen(entry, true)
	return nil
}

// UnfreezeSystem clears the named system's frozen flag.
func (s *Scheduler) UnfreezeSystem(name string) error {
	entry, err := s.lookup(name)
	if err != nil {
		return err
	}
	s.setFrozen(entry, false)
	return nil
}

// IsSystemFrozen reports whether the named system is registered and frozen.
func (s *Scheduler) IsSystemFrozen(name string) bool {
	entry, ok := s.byName[name]
	return ok && entry.frozen
}

func (s *Scheduler) setFrozen(entry *systemEntry, frozen bool) {
	if entry.frozen == frozen {
		return
	}
	entry.frozen = frozen
	if frozen {
		s.logger.Debug("system frozen", "system", entry.name)
	} else {
		s.logger.Debug("system unfrozen", "system", entry.name)
	}
}

// Update runs one cycle: every registered, unfrozen and due system is executed
// once in registration order. If resetTime is set, Time restarts at zero.
//
// Systems registered during the update first run on the next one. The first
// error returned by a system aborts the rest of the update and is returned;
// changes made before it are kept. Panics are not recovered.
func (s *Scheduler) Update(resetTime bool) error {
	now := s.clock()
	if resetTime {
		s.createdAt = now
	}
	t := now.Sub(s.createdAt).Seconds()
	dt := now.Sub(s.lastUpdateAt).Seconds()
	s.lastUpdateAt = now
	s.updates++

	for _, entry := range slices.Clone(s.systems) {
		if entry.removed || entry.frozen {
			continue
		}
		if entry.schedule != nil && !entry.schedule.advance(dt) {
			entry.stats.skipCount++
			continue
		}

		frame := newUpdateFrame(s, entry, t, dt)
		start := time.Now()
		err := entry.system.Execute(frame)
		entry.stats.record(time.Since(start))

		if err != nil {
			s.logger.Error("system failed", "system", entry.name, "error", err)
			return fmt.Errorf("system %q: %w", entry.name, err)
		}
	}

	return nil
}

// Run calls Update at the given interval until the context is cancelled or a
// system fails. It returns nil on cancellation.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Update(false); err != nil {
				return err
			}
		}
	}
}
