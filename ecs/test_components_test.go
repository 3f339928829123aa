package ecs_test

import (
	"time"

	"github.com/plus3/universe/ecs"
)

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type Score int32

var (
	position = ecs.NewComponent[Position]("position")
	velocity = ecs.NewComponent[Velocity]("velocity")
	name     = ecs.NewComponent[Name]("name")
	health   = ecs.NewComponent[Health]("health")
	score    = ecs.NewComponent[Score]("score")
)

// fakeClock is a manually advanced clock for deterministic timing.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestUniverse() (*ecs.Universe, *fakeClock) {
	clock := newFakeClock()
	return ecs.NewUniverse(ecs.WithClock(clock.Now)), clock
}

// counter returns a system that counts its invocations.
func counter(n *int) ecs.System {
	return ecs.SystemFunc(func(frame *ecs.UpdateFrame) error {
		*n++
		return nil
	})
}

// spawn creates an entity carrying the given components.
func spawn(u *ecs.Universe, components map[string]any) ecs.EntityId {
	id := u.CreateEntity()
	for name, payload := range components {
		if err := u.AttachComponent(id, name, payload); err != nil {
			panic(err)
		}
	}
	return id
}
