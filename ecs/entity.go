package ecs

// EntityId is an opaque entity identifier. Ids are never reused within a storage.
type EntityId uint64

// NilEntity is never issued by a storage.
const NilEntity EntityId = 0

// IDGenerator produces candidate entity ids. A storage skips candidates that
// collide with a live entity, so generators only need to be mostly unique.
type IDGenerator func() EntityId

// SequentialIDs returns a generator counting up from 1. Each call returns an
// independent counter, so two storages never share id state.
func SequentialIDs() IDGenerator {
	var next EntityId
	return func() EntityId {
		next++
		return next
	}
}

// entity holds the components attached to a single entity, keyed by name.
type entity struct {
	components map[string]any
}

func newEntity() *entity {
	return &entity{components: make(map[string]any)}
}

// hasAll reports whether every name is attached.
func (e *entity) hasAll(names []string) bool {
	for _, name := range names {
		if _, ok := e.components[name]; !ok {
			return false
		}
	}
	return true
}
