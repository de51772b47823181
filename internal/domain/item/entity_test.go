//go:build unit

package item_test

import (
	"testing"

	"lendit/internal/domain/item"
	"lendit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewItemBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.OwnerID, actual.OwnerID())
		assert.Equal(t, b.Name, actual.Name())
		assert.True(t, actual.Available())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().WithName("  Ladder  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Ladder", actual.Name())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := builder.NewItemBuilder().WithName("   ").BuildDomain()
		require.ErrorIs(t, err, item.ErrInvalidName)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := builder.NewItemBuilder().WithDescription("").BuildDomain()
		require.ErrorIs(t, err, item.ErrInvalidDescription)
	})
}

func TestItem_Update(t *testing.T) {
	t.Run("applies new values", func(t *testing.T) {
		entity, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, entity.Update("Hammer Drill", "SDS-plus hammer drill", false))
		assert.Equal(t, "Hammer Drill", entity.Name())
		assert.Equal(t, "SDS-plus hammer drill", entity.Description())
		assert.False(t, entity.Available())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		entity, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, entity.Update(" ", "still fine", true), item.ErrInvalidName)
		assert.Equal(t, "Cordless Drill", entity.Name())
	})
}

func TestItem_IsOwnedBy(t *testing.T) {
	b := builder.NewItemBuilder()
	entity, err := b.BuildDomain()
	require.NoError(t, err)

	assert.True(t, entity.IsOwnedBy(b.OwnerID))
	assert.False(t, entity.IsOwnedBy(uuid.New()))
}
