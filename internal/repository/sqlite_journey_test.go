package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmorland/wayfare/internal/testutil"
)

func TestJourneyRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteJourneyRepo(db)

	j := testutil.NewTestJourney("ISO 27001 Readiness")
	require.NoError(t, repo.Create(ctx, j))

	got, err := repo.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, j.ID, got.ID)
	assert.Equal(t, "ISO 27001 Readiness", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestJourneyRepo_GetByID_Unknown(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJourneyRepo(db)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJourneyRepo_List_OrderedByCreation(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteJourneyRepo(db)

	first := testutil.NewTestJourney("First")
	second := testutil.NewTestJourney("Second")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	journeys, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, journeys, 2)
	assert.Equal(t, "First", journeys[0].Name)
	assert.Equal(t, "Second", journeys[1].Name)
}

func TestJourneyRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteJourneyRepo(db)

	j := testutil.NewTestJourney("Doomed")
	require.NoError(t, repo.Create(ctx, j))
	require.NoError(t, repo.Delete(ctx, j.ID))

	_, err := repo.GetByID(ctx, j.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJourneyRepo_Delete_Unknown(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJourneyRepo(db)

	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
