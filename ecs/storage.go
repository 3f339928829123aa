package ecs

import (
	"fmt"
	"maps"

	"github.com/kamstrup/intmap"
)

// Storage owns every entity of a universe and the components attached to them.
type Storage struct {
	entities *intmap.Map[EntityId, *entity]
	ids      IDGenerator
	registry *ComponentRegistry
}

// NewStorage creates an empty storage. The registry is optional; when present,
// payloads attached under a registered name must match its type.
func NewStorage(registry *ComponentRegistry, opts ...Option) *Storage {
	cfg := newConfig(opts)
	if registry == nil {
		registry = cfg.registry
	}
	return &Storage{
		entities: intmap.New[EntityId, *entity](256),
		ids:      cfg.ids,
		registry: registry,
	}
}

// CreateEntity allocates a new entity with no components.
func (s *Storage) CreateEntity() EntityId {
	id := s.ids()
	for id == NilEntity || s.entities.Has(id) {
		id = s.ids()
	}
	s.entities.Put(id, newEntity())
	return id
}

func (s *Storage) lookup(id EntityId) (*entity, error) {
	e, ok := s.entities.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	return e, nil
}

// AttachComponent stores payload under name, replacing any previous payload.
// Payloads are stored as given; attach a pointer to mutate it in place through views.
func (s *Storage) AttachComponent(id EntityId, name string, payload any) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}
	if err := s.registry.check(name, payload); err != nil {
		return err
	}
	e.components[name] = payload
	return nil
}

// DetachComponent removes the named component. Detaching a name the entity
// does not carry is a no-op.
func (s *Storage) DetachComponent(id EntityId, name string) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}
	delete(e.components, name)
	return nil
}

// DestroyEntity removes the entity and all of its components.
func (s *Storage) DestroyEntity(id EntityId) error {
	if !s.entities.Del(id) {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	return nil
}

// CloneEntity returns a shallow copy of the entity's components. The map is
// independent of the storage, the payloads are not.
func (s *Storage) CloneEntity(id EntityId) (map[string]any, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return maps.Clone(e.components), nil
}

// HasEntity reports whether id is alive.
func (s *Storage) HasEntity(id EntityId) bool {
	return s.entities.Has(id)
}

// GetComponent returns the payload stored under name.
func (s *Storage) GetComponent(id EntityId, name string) (any, bool) {
	e, ok := s.entities.Get(id)
	if !ok {
		return nil, false
	}
	payload, ok := e.components[name]
	return payload, ok
}

// HasComponent reports whether the entity carries the named component.
func (s *Storage) HasComponent(id EntityId, name string) bool {
	_, ok := s.GetComponent(id, name)
	return ok
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return s.entities.Len()
}

// ComponentReader is the read side of a Storage.
type ComponentReader interface {
	GetComponent(id EntityId, name string) (any, bool)
}
