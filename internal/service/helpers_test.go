package service

import (
	"testing"

	"github.com/tmorland/wayfare/internal/repository"
	"github.com/tmorland/wayfare/internal/testutil"
)

// setupServices wires the full service stack against an in-memory database.
func setupServices(t *testing.T) (JourneyService, StageService, StepService) {
	t.Helper()
	database := testutil.NewTestDB(t)

	journeys := repository.NewSQLiteJourneyRepo(database)
	stages := repository.NewSQLiteStageRepo(database)
	steps := repository.NewSQLiteStepRepo(database)
	uow := testutil.NewTestUoW(database)

	return NewJourneyService(journeys, stages, steps, uow),
		NewStageService(stages, uow),
		NewStepService(steps, uow)
}
