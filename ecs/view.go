package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
	"unsafe"
)

// eface mirrors the runtime layout of an empty interface value.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// Record is one entity yielded by Storage.View. Components holds exactly the
// requested names, each mapped to the live stored payload.
type Record struct {
	Id         EntityId
	Components map[string]any
}

// Get returns the payload stored under name, or nil if it was not requested.
func (r Record) Get(name string) any {
	return r.Components[name]
}

// View returns the entities that carry every one of the given component names,
// in ascending id order. An empty name list matches every entity.
//
// The set of candidate entities is fixed when View is called. Each candidate is
// re-checked when it is reached, so entities destroyed or stripped of a
// requested component during iteration are skipped, and entities created after
// the call are never visited. The sequence is single-pass: ranging over it a
// second time yields nothing. Call View again to re-query.
func (s *Storage) View(names ...string) iter.Seq[Record] {
	names = slices.Clone(names)
	matches := s.matching(names)
	return func(yield func(Record) bool) {
		for id, e := range matches {
			rec := Record{Id: id, Components: make(map[string]any, len(names))}
			for _, name := range names {
				rec.Components[name] = e.components[name]
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// matching snapshots the live entity ids and returns a single-pass sequence
// over those that still exist and carry every name when reached.
func (s *Storage) matching(names []string) iter.Seq2[EntityId, *entity] {
	ids := slices.Collect(s.entities.Keys())
	slices.Sort(ids)
	consumed := false

	return func(yield func(EntityId, *entity) bool) {
		if consumed {
			return
		}
		consumed = true

		for _, id := range ids {
			e, ok := s.entities.Get(id)
			if !ok || !e.hasAll(names) {
				continue
			}
			if !yield(id, e) {
				return
			}
		}
	}
}

type viewField struct {
	name     string
	typ      reflect.Type
	offset   uintptr
	optional bool
}

// View is a typed query over a struct whose fields point at components.
//
// Each pointer field is filled with the live payload stored under the field's
// component name: the `ecs:"name"` tag if present, otherwise the field name.
// A tag of `ecs:"name,optional"` (or `ecs:",optional"`) makes the component
// optional; missing optional components leave the field nil. A field of type
// EntityId receives the entity id. Fields tagged `ecs:"-"` are ignored.
//
// Payloads must have been stored as the field's pointer type (Component.Attach
// does this); an entity holding a payload of another type does not match.
type View[T any] struct {
	storage  *Storage
	fields   []viewField
	required []string
	idOffset uintptr
	hasId    bool
}

var entityIdType = reflect.TypeFor[EntityId]()

// NewView creates a typed view over storage. It panics if T is not a struct
// of component pointers.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		tag := field.Tag.Get("ecs")
		if tag == "-" {
			continue
		}

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types: " + field.Name)
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		optional := false
		switch opts {
		case "":
		case "optional":
			optional = true
		default:
			panic("invalid ecs tag option: \"" + opts + "\" (only \"optional\" is supported)")
		}

		v.fields = append(v.fields, viewField{
			name:     name,
			typ:      field.Type,
			offset:   field.Offset,
			optional: optional,
		})
		if !optional {
			v.required = append(v.required, name)
		}
	}

	return v
}

// Names returns the component names the view requires.
func (v *View[T]) Names() []string {
	return slices.Clone(v.required)
}

// populate writes the entity's payload pointers into the struct at ptr.
// It returns false if a required component is missing or has the wrong type.
func (v *View[T]) populate(ptr unsafe.Pointer, id EntityId, e *entity) bool {
	for _, f := range v.fields {
		fieldPtr := unsafe.Add(ptr, f.offset)

		payload, ok := e.components[f.name]
		if ok && reflect.TypeOf(payload) != f.typ {
			ok = false
		}
		if !ok {
			if !f.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// The payload is a pointer of the field's type, so the interface data
		// word is the pointer itself.
		*(*unsafe.Pointer)(fieldPtr) = (*eface)(unsafe.Pointer(&payload)).data
	}

	if v.hasId {
		*(*EntityId)(unsafe.Add(ptr, v.idOffset)) = id
	}
	return true
}

// Fill populates ptr for the given entity. It returns false if the entity does
// not exist or lacks a required component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	e, ok := v.storage.entities.Get(id)
	if !ok || !e.hasAll(v.required) {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), id, e)
}

// Get returns a populated view struct for the entity, or nil if it does not match.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Iter returns a single-pass sequence over every matching entity, with the same
// snapshot rules as Storage.View.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	matches := v.storage.matching(v.required)
	return func(yield func(EntityId, T) bool) {
		var result T
		resultPtr := unsafe.Pointer(&result)

		for id, e := range matches {
			if !v.populate(resultPtr, id, e) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs.
func (v *View[T]) Values() iter.Seq[T] {
	seq := v.Iter()
	return func(yield func(T) bool) {
		for _, value := range seq {
			if !yield(value) {
				return
			}
		}
	}
}
