package ecs

import (
	"fmt"
	"reflect"
)

// ComponentRegistry declares the payload type expected under each component name.
// Each Storage may have its own registry, so independent universes can use the
// same names for different types. Names that are not registered stay untyped.
type ComponentRegistry struct {
	types map[string]reflect.Type
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		types: make(map[string]reflect.Type),
	}
}

// RegisterComponent declares that payloads under name are *T and returns the
// typed key for them. Registering a name again replaces its type.
func RegisterComponent[T any](r *ComponentRegistry, name string) Component[T] {
	r.types[name] = reflect.TypeFor[*T]()
	return NewComponent[T](name)
}

// TypeOf returns the payload type registered for name.
func (r *ComponentRegistry) TypeOf(name string) (reflect.Type, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.types[name]
	return t, ok
}

func (r *ComponentRegistry) check(name string, payload any) error {
	want, ok := r.TypeOf(name)
	if !ok {
		return nil
	}
	if got := reflect.TypeOf(payload); got != want {
		return fmt.Errorf("%w: %q wants %s, got %v", ErrComponentType, name, want, got)
	}
	return nil
}

// Component is a typed key for a named component. Payloads attached through
// it are stored as *T so views hand out live pointers.
type Component[T any] struct {
	name string
}

// NewComponent returns the typed key for name without registering it.
func NewComponent[T any](name string) Component[T] {
	return Component[T]{name: name}
}

// Name returns the component name.
func (c Component[T]) Name() string {
	return c.name
}

// Attach copies value into a new *T and stores it on the entity.
func (c Component[T]) Attach(s *Storage, id EntityId, value T) error {
	return s.AttachComponent(id, c.name, &value)
}

// Detach removes the component from the entity.
func (c Component[T]) Detach(s *Storage, id EntityId) error {
	return s.DetachComponent(id, c.name)
}

// Get returns the live payload, or nil if the entity lacks the component or
// it was stored with a different type.
func (c Component[T]) Get(r ComponentReader, id EntityId) *T {
	payload, ok := r.GetComponent(id, c.name)
	if !ok {
		return nil
	}
	ptr, _ := payload.(*T)
	return ptr
}

// Has reports whether the entity carries a *T under this name.
func (c Component[T]) Has(r ComponentReader, id EntityId) bool {
	return c.Get(r, id) != nil
}
