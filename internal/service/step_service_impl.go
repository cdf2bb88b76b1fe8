package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tmorland/wayfare/internal/db"
	"github.com/tmorland/wayfare/internal/domain"
	"github.com/tmorland/wayfare/internal/repository"
)

type stepService struct {
	steps repository.StepRepo
	uow   db.UnitOfWork
}

func NewStepService(steps repository.StepRepo, uow db.UnitOfWork) StepService {
	return &stepService{steps: steps, uow: uow}
}

// Add appends a step to the stage. An empty status defaults to NOT_STARTED;
// a present but unrecognized status is rejected rather than defaulted.
func (s *stepService) Add(ctx context.Context, stageID, name, status string) (*domain.Step, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("step name required: %w", ErrInvalidInput)
	}

	parsed := domain.StepNotStarted
	if status != "" {
		var err error
		parsed, err = domain.ParseStepStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
		}
	}

	now := time.Now().UTC()
	step := &domain.Step{
		ID:        uuid.New().String(),
		StageID:   stageID,
		Name:      name,
		Status:    parsed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStages := repository.NewSQLiteStageRepo(tx)
		txSteps := repository.NewSQLiteStepRepo(tx)

		if _, err := txStages.GetByID(ctx, stageID); err != nil {
			return err
		}

		order, err := txSteps.NextOrderIndex(ctx, stageID)
		if err != nil {
			return err
		}
		step.OrderIndex = order

		return txSteps.Create(ctx, step)
	})
	if err != nil {
		return nil, err
	}
	return step, nil
}

// UpdateStatus replaces the step's status in place. Any of the three states
// is reachable from any other; updating to the current value is a no-op.
func (s *stepService) UpdateStatus(ctx context.Context, stepID, status string) (*domain.Step, error) {
	parsed, err := domain.ParseStepStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}

	var updated *domain.Step
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSteps := repository.NewSQLiteStepRepo(tx)

		step, err := txSteps.GetByID(ctx, stepID)
		if err != nil {
			return err
		}

		step.Status = parsed
		step.UpdatedAt = time.Now().UTC()
		if err := txSteps.Update(ctx, step); err != nil {
			return err
		}
		updated = step
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *stepService) Delete(ctx context.Context, stepID string) error {
	return s.steps.Delete(ctx, stepID)
}
