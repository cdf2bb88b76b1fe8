package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmorland/wayfare/internal/domain"
	"github.com/tmorland/wayfare/internal/testutil"
)

func setupStage(t *testing.T) (context.Context, *SQLiteStepRepo, *domain.Stage) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	journeys := NewSQLiteJourneyRepo(db)
	stages := NewSQLiteStageRepo(db)
	steps := NewSQLiteStepRepo(db)

	j := testutil.NewTestJourney("Journey")
	require.NoError(t, journeys.Create(ctx, j))
	st := testutil.NewTestStage(j.ID, "Stage")
	require.NoError(t, stages.Create(ctx, st))
	return ctx, steps, st
}

func TestStepRepo_CreateAndGet(t *testing.T) {
	ctx, steps, stage := setupStage(t)

	step := testutil.NewTestStep(stage.ID, "Kickoff Call", testutil.WithStatus(domain.StepCompleted))
	require.NoError(t, steps.Create(ctx, step))

	got, err := steps.GetByID(ctx, step.ID)
	require.NoError(t, err)
	assert.Equal(t, stage.ID, got.StageID)
	assert.Equal(t, "Kickoff Call", got.Name)
	assert.Equal(t, domain.StepCompleted, got.Status)
}

func TestStepRepo_ListByStage_InsertionOrder(t *testing.T) {
	ctx, steps, stage := setupStage(t)

	for i, name := range []string{"one", "two", "three"} {
		require.NoError(t, steps.Create(ctx, testutil.NewTestStep(stage.ID, name, testutil.WithStepOrder(i))))
	}

	listed, err := steps.ListByStage(ctx, stage.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "one", listed[0].Name)
	assert.Equal(t, "three", listed[2].Name)
}

func TestStepRepo_ListByJourney_SpansStages(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	journeys := NewSQLiteJourneyRepo(db)
	stages := NewSQLiteStageRepo(db)
	steps := NewSQLiteStepRepo(db)

	j := testutil.NewTestJourney("Journey")
	require.NoError(t, journeys.Create(ctx, j))

	stageA := testutil.NewTestStage(j.ID, "A", testutil.WithStageOrder(0))
	stageB := testutil.NewTestStage(j.ID, "B", testutil.WithStageOrder(1))
	require.NoError(t, stages.Create(ctx, stageA))
	require.NoError(t, stages.Create(ctx, stageB))

	require.NoError(t, steps.Create(ctx, testutil.NewTestStep(stageA.ID, "a1", testutil.WithStepOrder(0))))
	require.NoError(t, steps.Create(ctx, testutil.NewTestStep(stageA.ID, "a2", testutil.WithStepOrder(1))))
	require.NoError(t, steps.Create(ctx, testutil.NewTestStep(stageB.ID, "b1", testutil.WithStepOrder(0))))

	all, err := steps.ListByJourney(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a1", all[0].Name)
	assert.Equal(t, "a2", all[1].Name)
	assert.Equal(t, "b1", all[2].Name)

	// Steps in an unrelated journey are not included.
	other := testutil.NewTestJourney("Other")
	require.NoError(t, journeys.Create(ctx, other))
	otherStage := testutil.NewTestStage(other.ID, "O")
	require.NoError(t, stages.Create(ctx, otherStage))
	require.NoError(t, steps.Create(ctx, testutil.NewTestStep(otherStage.ID, "o1")))

	all, err = steps.ListByJourney(ctx, j.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStepRepo_UpdateStatus(t *testing.T) {
	ctx, steps, stage := setupStage(t)

	step := testutil.NewTestStep(stage.ID, "Define Scope")
	require.NoError(t, steps.Create(ctx, step))

	step.Status = domain.StepInProgress
	step.UpdatedAt = time.Now().UTC().Add(time.Second)
	require.NoError(t, steps.Update(ctx, step))

	got, err := steps.GetByID(ctx, step.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepInProgress, got.Status)
}

func TestStepRepo_Update_Unknown(t *testing.T) {
	ctx, steps, stage := setupStage(t)

	ghost := testutil.NewTestStep(stage.ID, "ghost")
	err := steps.Update(ctx, ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStepRepo_Delete_Unknown(t *testing.T) {
	ctx, steps, _ := setupStage(t)

	err := steps.Delete(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
