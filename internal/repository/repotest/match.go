// Package repotest holds behaviour tests shared by every repository.Match
// implementation.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AquaponicsSim_Go/internal/aquaponics"
	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/fish"
	"github.com/osse101/AquaponicsSim_Go/internal/repository"
)

// NewMatch builds a small but non-trivial match document
func NewMatch(label string, updated time.Time) *domain.Match {
	state := &domain.GameState{
		Seed:      42,
		Fish:      []*domain.Fish{fish.New(catalog.FishTilapia, 6)},
		Plants:    []*domain.Plant{},
		System:    aquaponics.NewSystem(),
		Money:     4321.5,
		GameTime:  12,
		Equipment: map[string]int{"waterPump": 1},
		FishFood:  7,
		MaxFish:   20,
		MaxPlants: 10,
	}
	return &domain.Match{
		ID:        uuid.New(),
		Label:     label,
		State:     state,
		CreatedAt: updated.Add(-time.Hour).UTC().Truncate(time.Microsecond),
		UpdatedAt: updated.UTC().Truncate(time.Microsecond),
	}
}

// RunMatchRepositoryTests exercises the repository.Match contract against
// the store returned by newRepo. Each subtest gets a fresh store.
func RunMatchRepositoryTests(t *testing.T, newRepo func(t *testing.T) repository.Match) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("SaveThenLoad", func(t *testing.T) {
		repo := newRepo(t)
		m := NewMatch("first", base)
		require.NoError(t, repo.Save(ctx, m))

		got, err := repo.Load(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, m.ID, got.ID)
		assert.Equal(t, "first", got.Label)
		assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, m.UpdatedAt.Equal(got.UpdatedAt))
		require.NotNil(t, got.State)
		assert.Equal(t, 12, got.State.GameTime)
		assert.Equal(t, 4321.5, got.State.Money)
		assert.Equal(t, 7, got.State.FishFood)
		assert.Equal(t, 1, got.State.Equipment["waterPump"])
		require.Len(t, got.State.Fish, 1)
		assert.Equal(t, catalog.FishTilapia, got.State.Fish[0].Type)
	})

	t.Run("LoadReturnsCopy", func(t *testing.T) {
		repo := newRepo(t)
		m := NewMatch("copy", base)
		require.NoError(t, repo.Save(ctx, m))

		got, err := repo.Load(ctx, m.ID)
		require.NoError(t, err)
		got.State.Money = 0

		again, err := repo.Load(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, 4321.5, again.State.Money)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		repo := newRepo(t)
		m := NewMatch("before", base)
		require.NoError(t, repo.Save(ctx, m))

		m.Label = "after"
		m.State.GameTime = 13
		m.UpdatedAt = base.Add(time.Hour)
		require.NoError(t, repo.Save(ctx, m))

		got, err := repo.Load(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "after", got.Label)
		assert.Equal(t, 13, got.State.GameTime)
		assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("LoadMissing", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Load(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := newRepo(t)
		m := NewMatch("gone", base)
		require.NoError(t, repo.Save(ctx, m))

		require.NoError(t, repo.Delete(ctx, m.ID))
		_, err := repo.Load(ctx, m.ID)
		assert.ErrorIs(t, err, domain.ErrMatchNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, m.ID), domain.ErrMatchNotFound)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		repo := newRepo(t)
		old := NewMatch("old", base)
		mid := NewMatch("mid", base.Add(time.Minute))
		recent := NewMatch("recent", base.Add(2*time.Minute))
		for _, m := range []*domain.Match{mid, old, recent} {
			require.NoError(t, repo.Save(ctx, m))
		}

		got, err := repo.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"recent", "mid", "old"}, []string{got[0].Label, got[1].Label, got[2].Label})
		assert.Equal(t, 12, got[0].GameTime)
		assert.Equal(t, 4321.5, got[0].Money)

		limited, err := repo.List(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("ListEmpty", func(t *testing.T) {
		repo := newRepo(t)
		got, err := repo.List(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
