package ecs_test

import (
	"testing"

	"github.com/plus3/universe/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentKey(t *testing.T) {
	storage := ecs.NewStorage(nil)
	id := storage.CreateEntity()

	require.NoError(t, position.Attach(storage, id, Position{X: 5, Y: 10}))

	pos := position.Get(storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 5, Y: 10}, *pos)
	assert.True(t, position.Has(storage, id))
	assert.False(t, velocity.Has(storage, id))
	assert.Nil(t, velocity.Get(storage, id))
	assert.Equal(t, "position", position.Name())

	pos.X = 7
	assert.Equal(t, float32(7), position.Get(storage, id).X)

	require.NoError(t, position.Detach(storage, id))
	assert.Nil(t, position.Get(storage, id))
}

func TestComponentKeyTypeMismatch(t *testing.T) {
	storage := ecs.NewStorage(nil)
	id := storage.CreateEntity()
	require.NoError(t, storage.AttachComponent(id, "position", Position{X: 1}))

	// Stored by value, not as *Position.
	assert.Nil(t, position.Get(storage, id))
	assert.False(t, position.Has(storage, id))
}

func TestComponentKeyUnknownEntity(t *testing.T) {
	storage := ecs.NewStorage(nil)

	assert.ErrorIs(t, position.Attach(storage, 3, Position{}), ecs.ErrUnknownEntity)
	assert.ErrorIs(t, position.Detach(storage, 3), ecs.ErrUnknownEntity)
	assert.Nil(t, position.Get(storage, 3))
}

func TestComponentRegistry(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	pos := ecs.RegisterComponent[Position](registry, "position")
	storage := ecs.NewStorage(registry)
	id := storage.CreateEntity()

	t.Run("accepts registered type", func(t *testing.T) {
		require.NoError(t, pos.Attach(storage, id, Position{X: 1}))
		require.NoError(t, storage.AttachComponent(id, "position", &Position{X: 2}))
		assert.Equal(t, float32(2), pos.Get(storage, id).X)
	})

	t.Run("rejects other types", func(t *testing.T) {
		err := storage.AttachComponent(id, "position", Position{X: 3})
		assert.ErrorIs(t, err, ecs.ErrComponentType)

		err = storage.AttachComponent(id, "position", &Velocity{})
		assert.ErrorIs(t, err, ecs.ErrComponentType)

		assert.Equal(t, float32(2), pos.Get(storage, id).X)
	})

	t.Run("unregistered names stay untyped", func(t *testing.T) {
		assert.NoError(t, storage.AttachComponent(id, "anything", 12))
	})

	t.Run("type lookup", func(t *testing.T) {
		typ, ok := registry.TypeOf("position")
		require.True(t, ok)
		assert.Equal(t, "*ecs_test.Position", typ.String())

		_, ok = registry.TypeOf("velocity")
		assert.False(t, ok)
	})
}

func TestUniverseWithComponentRegistry(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Health](registry, "health")
	u := ecs.NewUniverse(ecs.WithComponentRegistry(registry))

	id := u.CreateEntity()
	assert.ErrorIs(t, u.AttachComponent(id, "health", 100), ecs.ErrComponentType)
	assert.NoError(t, health.Attach(u.Storage, id, Health{Current: 100, Max: 100}))
}
