package ecs

import (
	"fmt"
	"math"
)

// Unit is the measure a system schedule counts in.
type Unit int

const (
	// Updates counts calls to Update.
	Updates Unit = iota
	// Seconds counts accumulated delta time.
	Seconds
)

func (u Unit) String() string {
	switch u {
	case Updates:
		return "updates"
	case Seconds:
		return "seconds"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// schedule throttles a system to one run per interval.
type schedule struct {
	interval float64
	unit     Unit
	elapsed  float64
}

func newSchedule(interval float64, unit Unit) (*schedule, error) {
	if !(interval > 0) || math.IsInf(interval, 1) {
		return nil, fmt.Errorf("%w: interval %v", ErrInvalidSchedule, interval)
	}
	if unit != Updates && unit != Seconds {
		return nil, fmt.Errorf("%w: unit %v", ErrInvalidSchedule, unit)
	}
	// A fresh schedule is overdue so the first opportunity runs.
	return &schedule{interval: interval, unit: unit, elapsed: math.Inf(1)}, nil
}

// advance accounts for one update of dt seconds and reports whether the
// system is due. Being due resets the accumulator.
func (s *schedule) advance(dt float64) bool {
	switch s.unit {
	case Seconds:
		s.elapsed += dt
	default:
		s.elapsed++
	}
	if s.elapsed >= s.interval {
		s.elapsed = 0
		return true
	}
	return false
}
