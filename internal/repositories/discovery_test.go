package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturedex/naturedex-server/internal/models"
)

func TestDiscoveryWriteRepository_SaveLabel(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	repo := NewDiscoveryWriteRepository(db, nil)
	ctx := context.Background()

	user, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	require.NoError(t, err)

	t.Run("NewLabel", func(t *testing.T) {
		inserted, err := repo.SaveLabel(ctx, user.ID, models.CategoryFlowers, "daisy")
		assert.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("DuplicateLabel", func(t *testing.T) {
		inserted, err := repo.SaveLabel(ctx, user.ID, models.CategoryFlowers, "daisy")
		assert.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("SameLabelOtherCategory", func(t *testing.T) {
		// Uniqueness is per (user, category, label).
		inserted, err := repo.SaveLabel(ctx, user.ID, models.CategoryTrees, "daisy")
		assert.NoError(t, err)
		assert.True(t, inserted)
	})
}

func TestDiscoveryReadRepository_CountByUserID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	writeRepo := NewDiscoveryWriteRepository(db, nil)
	readRepo := NewDiscoveryReadRepository(db)
	ctx := context.Background()

	alice, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	require.NoError(t, err)
	bob, err := userRepo.Save(ctx, "bob", "bob@example.com", "hash")
	require.NoError(t, err)

	for _, label := range []string{"daisy", "rose", "tulip"} {
		_, err := writeRepo.SaveLabel(ctx, alice.ID, models.CategoryFlowers, label)
		require.NoError(t, err)
	}
	_, err = writeRepo.SaveLabel(ctx, alice.ID, models.CategoryRocks, "granite")
	require.NoError(t, err)
	_, err = writeRepo.SaveLabel(ctx, bob.ID, models.CategoryTrees, "oak")
	require.NoError(t, err)

	t.Run("CountsPerCategory", func(t *testing.T) {
		counts, err := readRepo.CountByUserID(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), counts[models.CategoryFlowers])
		assert.Equal(t, int64(1), counts[models.CategoryRocks])

		// No tree labels, so the key is absent.
		_, ok := counts[models.CategoryTrees]
		assert.False(t, ok)
	})

	t.Run("OtherUserIsolated", func(t *testing.T) {
		counts, err := readRepo.CountByUserID(ctx, bob.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), counts[models.CategoryTrees])
		assert.Len(t, counts, 1)
	})

	t.Run("NoDiscoveries", func(t *testing.T) {
		counts, err := readRepo.CountByUserID(ctx, 9999)
		assert.NoError(t, err)
		assert.Empty(t, counts)
	})
}
