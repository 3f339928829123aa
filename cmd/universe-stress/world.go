package main

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/universe/ecs"
)

type Position struct {
	mgl64.Vec2
}

type Velocity struct {
	mgl64.Vec2
}

type Health struct {
	Current float64
	Max     float64
}

// Lifetime is the number of seconds an entity has left before it is reaped.
type Lifetime struct {
	Remaining float64
}

const (
	arenaSize   = 1000.0
	respawnCmd  = "respawn"
	spawnerName = "spawner"
)

var (
	registry = ecs.NewComponentRegistry()

	position = ecs.RegisterComponent[Position](registry, "position")
	velocity = ecs.RegisterComponent[Velocity](registry, "velocity")
	health   = ecs.RegisterComponent[Health](registry, "health")
	lifetime = ecs.RegisterComponent[Lifetime](registry, "lifetime")

	respawn = ecs.NewCommand[int](respawnCmd)
)

// spawnRandomEntity creates an entity with a random subset of the stress
// components. Every entity gets a position.
func spawnRandomEntity(s *ecs.Storage) ecs.EntityId {
	id := s.CreateEntity()
	position.Attach(s, id, Position{mgl64.Vec2{rand.Float64() * arenaSize, rand.Float64() * arenaSize}})

	if rand.Intn(2) == 0 {
		velocity.Attach(s, id, Velocity{mgl64.Vec2{rand.Float64()*20 - 10, rand.Float64()*20 - 10}})
	}
	if rand.Intn(3) == 0 {
		maxHP := 50 + rand.Float64()*50
		health.Attach(s, id, Health{Current: rand.Float64() * maxHP, Max: maxHP})
	}
	if rand.Intn(4) == 0 {
		lifetime.Attach(s, id, Lifetime{Remaining: 1 + rand.Float64()*5})
	}
	return id
}

type mover struct {
	Position *Position `ecs:"position"`
	Velocity *Velocity `ecs:"velocity"`
}

// movementSystem integrates velocity and bounces entities off the arena edges.
func movementSystem(s *ecs.Storage) ecs.System {
	movers := ecs.NewView[mover](s)
	return ecs.SystemFunc(func(frame *ecs.UpdateFrame) error {
		for m := range movers.Values() {
			m.Position.Vec2 = m.Position.Add(m.Velocity.Mul(frame.DeltaTime))
			for axis := 0; axis < 2; axis++ {
				if m.Position.Vec2[axis] < 0 || m.Position.Vec2[axis] > arenaSize {
					m.Velocity.Vec2[axis] = -m.Velocity.Vec2[axis]
					m.Position.Vec2[axis] = mgl64.Clamp(m.Position.Vec2[axis], 0, arenaSize)
				}
			}
		}
		return nil
	})
}

// regenSystem heals every damaged entity by a fixed amount per run.
func regenSystem(frame *ecs.UpdateFrame) error {
	for rec := range frame.View("health") {
		h := rec.Get("health").(*Health)
		h.Current = min(h.Current+1, h.Max)
	}
	return nil
}

// reaperSystem destroys entities whose lifetime ran out and asks the spawner
// to replace them.
func reaperSystem(frame *ecs.UpdateFrame) error {
	reaped := 0
	for rec := range frame.View("lifetime") {
		l := rec.Get("lifetime").(*Lifetime)
		l.Remaining -= frame.DeltaTime
		if l.Remaining > 0 {
			continue
		}
		if err := frame.Storage.DestroyEntity(rec.Id); err != nil {
			return err
		}
		reaped++
	}
	if reaped == 0 {
		return nil
	}
	return respawn.Send(frame, spawnerName, reaped)
}

// spawnerSystem replaces reaped entities.
func spawnerSystem(frame *ecs.UpdateFrame) error {
	respawn.Handle(frame, func(count int) {
		for i := 0; i < count; i++ {
			spawnRandomEntity(frame.Storage)
		}
	})
	return nil
}

// directorSystem toggles regeneration on and off every few seconds.
func directorSystem(period float64) ecs.System {
	return ecs.SystemFunc(func(frame *ecs.UpdateFrame) error {
		if int(frame.Time/period)%2 == 0 {
			return frame.UnfreezeSystem("regen")
		}
		return frame.FreezeSystem("regen")
	})
}

func registerSystems(u *ecs.Universe) error {
	systems := []struct {
		name   string
		system ecs.System
	}{
		{"director", directorSystem(2)},
		{"movement", movementSystem(u.Storage)},
		{"regen", ecs.SystemFunc(regenSystem)},
		{"reaper", ecs.SystemFunc(reaperSystem)},
		{spawnerName, ecs.SystemFunc(spawnerSystem)},
	}
	for _, s := range systems {
		if err := u.RegisterSystem(s.name, s.system); err != nil {
			return err
		}
	}
	return u.ScheduleSystem("regen", 0.25, ecs.Seconds)
}
