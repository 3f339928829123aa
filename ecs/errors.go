package ecs

import "errors"

var (
	// ErrUnknownEntity is returned when an operation references an entity that is not alive.
	ErrUnknownEntity = errors.New("ecs: unknown entity")
	// ErrUnknownSystem is returned when an operation references a system that is not registered.
	ErrUnknownSystem = errors.New("ecs: unknown system")
	// ErrDuplicateSystem is returned when registering a name that is already in use.
	ErrDuplicateSystem = errors.New("ecs: duplicate system")
	// ErrInvalidSchedule is returned for a non-positive interval or an unknown unit.
	ErrInvalidSchedule = errors.New("ecs: invalid schedule")
	// ErrComponentType is returned when a payload does not match the type registered for its name.
	ErrComponentType = errors.New("ecs: component type mismatch")
)
