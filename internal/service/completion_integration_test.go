package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJourneyCompletion_WeightedUnionNotStageAverage pins the aggregation
// rule: journey completion is computed over the union of all steps, so a
// stage with many steps weighs more than a stage with one.
func TestJourneyCompletion_WeightedUnionNotStageAverage(t *testing.T) {
	journeys, stages, steps := setupServices(t)
	ctx := context.Background()

	j, err := journeys.Create(ctx, "Journey")
	require.NoError(t, err)

	big, err := stages.Add(ctx, j.ID, "Big")
	require.NoError(t, err)
	small, err := stages.Add(ctx, j.ID, "Small")
	require.NoError(t, err)

	// Big: 4 completed steps (100%). Small: 1 not-started step (0%).
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := steps.Add(ctx, big.ID, name, "COMPLETED")
		require.NoError(t, err)
	}
	_, err = steps.Add(ctx, small.ID, "e", "NOT_STARTED")
	require.NoError(t, err)

	view, err := journeys.GetByID(ctx, j.ID)
	require.NoError(t, err)

	assert.Equal(t, 100, view.Stages[0].Completion)
	assert.Equal(t, 0, view.Stages[1].Completion)
	// 4 of 5 steps completed = 80, not the stage average of 50.
	assert.Equal(t, 80, view.Completion)
}

// TestJourneyCompletion_MixedStages: Stage A [COMPLETED, NOT_STARTED] = 50,
// Stage B [IN_PROGRESS] = 50, journey over all 3 steps =
// (1.0+0.0+0.5)/3*100 = 50.
func TestJourneyCompletion_MixedStages(t *testing.T) {
	journeys, stages, steps := setupServices(t)
	ctx := context.Background()

	j, err := journeys.Create(ctx, "Journey")
	require.NoError(t, err)

	stageA, err := stages.Add(ctx, j.ID, "A")
	require.NoError(t, err)
	stageB, err := stages.Add(ctx, j.ID, "B")
	require.NoError(t, err)

	_, err = steps.Add(ctx, stageA.ID, "done", "COMPLETED")
	require.NoError(t, err)
	_, err = steps.Add(ctx, stageA.ID, "untouched", "NOT_STARTED")
	require.NoError(t, err)
	_, err = steps.Add(ctx, stageB.ID, "underway", "IN_PROGRESS")
	require.NoError(t, err)

	view, err := journeys.GetByID(ctx, j.ID)
	require.NoError(t, err)

	assert.Equal(t, 50, view.Stages[0].Completion)
	assert.Equal(t, 50, view.Stages[1].Completion)
	assert.Equal(t, 50, view.Completion)
}

// TestJourneyCompletion_NeverStale verifies that every kind of mutation is
// reflected on the next read.
func TestJourneyCompletion_NeverStale(t *testing.T) {
	journeys, stages, steps := setupServices(t)
	ctx := context.Background()

	j, err := journeys.Create(ctx, "Journey")
	require.NoError(t, err)
	st, err := stages.Add(ctx, j.ID, "Stage")
	require.NoError(t, err)

	read := func() int {
		t.Helper()
		view, err := journeys.GetByID(ctx, j.ID)
		require.NoError(t, err)
		return view.Completion
	}

	assert.Equal(t, 0, read())

	step, err := steps.Add(ctx, st.ID, "Step", "")
	require.NoError(t, err)
	assert.Equal(t, 0, read())

	_, err = steps.UpdateStatus(ctx, step.ID, "IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, 50, read())

	_, err = steps.UpdateStatus(ctx, step.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, 100, read())

	require.NoError(t, steps.Delete(ctx, step.ID))
	assert.Equal(t, 0, read())
}
