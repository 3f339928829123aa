package ecs

import (
	"slices"
	"sort"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalUpdates    int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name            string
	Frozen          bool
	Scheduled       bool
	PendingCommands int
	ExecutionCount  int64
	SkipCount       int64
	MinDuration     time.Duration
	MaxDuration     time.Duration
	AvgDuration     time.Duration
	LastDuration    time.Duration
	TotalDuration   time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	skipCount      int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newSystemStatsInternal(name string) *systemStatsInternal {
	return &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (st *systemStatsInternal) record(duration time.Duration) {
	st.executionCount++
	st.lastDuration = duration
	st.totalDuration += duration

	if duration < st.minDuration {
		st.minDuration = duration
	}
	if duration > st.maxDuration {
		st.maxDuration = duration
	}
}

// GetStats returns statistics about system execution, in update order.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:  len(s.systems),
		TotalUpdates: s.updates,
		Systems:      make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, entry := range s.systems {
		internal := entry.stats

		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:            internal.name,
			Frozen:          entry.frozen,
			Scheduled:       entry.schedule != nil,
			PendingCommands: entry.commands.len(),
			ExecutionCount:  internal.executionCount,
			SkipCount:       internal.skipCount,
			MinDuration:     minDuration,
			MaxDuration:     internal.maxDuration,
			AvgDuration:     avgDuration,
			LastDuration:    internal.lastDuration,
			TotalDuration:   internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

// StorageStats summarizes the contents of a Storage.
type StorageStats struct {
	TotalEntityCount    int
	TotalComponentCount int
	// ComponentBreakdown lists how many entities carry each component name,
	// sorted by name.
	ComponentBreakdown []ComponentStats
}

// ComponentStats counts the entities carrying one component name.
type ComponentStats struct {
	Name        string
	EntityCount int
}

// CollectStats walks the storage and summarizes its contents.
func (s *Storage) CollectStats() *StorageStats {
	counts := make(map[string]int)
	stats := &StorageStats{TotalEntityCount: s.entities.Len()}

	for e := range s.entities.Values() {
		stats.TotalComponentCount += len(e.components)
		for name := range e.components {
			counts[name]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	stats.ComponentBreakdown = make([]ComponentStats, 0, len(names))
	for _, name := range names {
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			Name:        name,
			EntityCount: counts[name],
		})
	}
	return stats
}

// Component returns the breakdown entry for name.
func (st *StorageStats) Component(name string) (ComponentStats, bool) {
	i := slices.IndexFunc(st.ComponentBreakdown, func(c ComponentStats) bool { return c.Name == name })
	if i < 0 {
		return ComponentStats{}, false
	}
	return st.ComponentBreakdown[i], true
}
