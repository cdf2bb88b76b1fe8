package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tmorland/wayfare/internal/db"
	"github.com/tmorland/wayfare/internal/domain"
	"github.com/tmorland/wayfare/internal/repository"
)

// demoJourneyName identifies the built-in demo journey; SeedDemo is
// idempotent keyed on this name.
const demoJourneyName = "ISO 27001 Readiness"

type seedStage struct {
	name  string
	steps []seedStep
}

type seedStep struct {
	name   string
	status domain.StepStatus
}

var demoStages = []seedStage{
	{
		name: "Initial Scoping",
		steps: []seedStep{
			{"Kickoff Call", domain.StepCompleted},
			{"Define Scope", domain.StepInProgress},
		},
	},
	{
		name: "Onboarding",
		steps: []seedStep{
			{"Connect AWS", domain.StepNotStarted},
		},
	},
}

// SeedDemo installs the demo journey if it is not already present and
// returns its full hierarchy. The whole install runs in one transaction.
func (s *journeyService) SeedDemo(ctx context.Context) (*JourneyView, error) {
	existing, err := s.journeys.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, j := range existing {
		if j.Name == demoJourneyName {
			return s.GetByID(ctx, j.ID)
		}
	}

	now := time.Now().UTC()
	journey := &domain.Journey{
		ID:        uuid.New().String(),
		Name:      demoJourneyName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txJourneys := repository.NewSQLiteJourneyRepo(tx)
		txStages := repository.NewSQLiteStageRepo(tx)
		txSteps := repository.NewSQLiteStepRepo(tx)

		if err := txJourneys.Create(ctx, journey); err != nil {
			return err
		}
		for i, stage := range demoStages {
			st := &domain.Stage{
				ID:         uuid.New().String(),
				JourneyID:  journey.ID,
				Name:       stage.name,
				OrderIndex: i,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := txStages.Create(ctx, st); err != nil {
				return err
			}
			for k, step := range stage.steps {
				if err := txSteps.Create(ctx, &domain.Step{
					ID:         uuid.New().String(),
					StageID:    st.ID,
					Name:       step.name,
					Status:     step.status,
					OrderIndex: k,
					CreatedAt:  now,
					UpdatedAt:  now,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, journey.ID)
}
