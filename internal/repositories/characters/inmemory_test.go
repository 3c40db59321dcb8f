package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/repositories/characters"
	"github.com/KirkDiggler/naruto2d6-discord/internal/testutils"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Naruto")
	require.NoError(t, repo.Create(ctx, char))

	err := repo.Create(ctx, char)
	assert.True(t, apperr.Is(err, apperr.CodeAlreadyExists))

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		got.Momentum.Set(7)

		again, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 0, again.Momentum.Value)
	})

	t.Run("list by owner is scoped to the guild", func(t *testing.T) {
		other := testutils.CreateTestCharacter("char-2", "user-1", "guild-2", "Sasuke")
		require.NoError(t, repo.Create(ctx, other))

		chars, err := repo.ListByOwner(ctx, "guild-1", "user-1")
		require.NoError(t, err)
		require.Len(t, chars, 1)
		assert.Equal(t, "Naruto", chars[0].Name)
	})

	t.Run("update", func(t *testing.T) {
		got, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		got.FireWill.Set(1)
		require.NoError(t, repo.Update(ctx, got))

		again, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 1, again.FireWill.Value)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "char-2"))
		_, err := repo.Get(ctx, "char-2")
		assert.True(t, apperr.IsNotFound(err))
	})
}
