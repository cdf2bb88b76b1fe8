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

type stageService struct {
	stages repository.StageRepo
	uow    db.UnitOfWork
}

func NewStageService(stages repository.StageRepo, uow db.UnitOfWork) StageService {
	return &stageService{stages: stages, uow: uow}
}

// Add appends a stage to the end of the journey's stage collection. The
// owner check and the insert run in one transaction so the order index
// cannot be claimed twice.
func (s *stageService) Add(ctx context.Context, journeyID, name string) (*domain.Stage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("stage name required: %w", ErrInvalidInput)
	}

	now := time.Now().UTC()
	stage := &domain.Stage{
		ID:        uuid.New().String(),
		JourneyID: journeyID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txJourneys := repository.NewSQLiteJourneyRepo(tx)
		txStages := repository.NewSQLiteStageRepo(tx)

		if _, err := txJourneys.GetByID(ctx, journeyID); err != nil {
			return err
		}

		order, err := txStages.NextOrderIndex(ctx, journeyID)
		if err != nil {
			return err
		}
		stage.OrderIndex = order

		return txStages.Create(ctx, stage)
	})
	if err != nil {
		return nil, err
	}
	return stage, nil
}

// Delete removes the stage; its steps go with it via the schema cascade.
func (s *stageService) Delete(ctx context.Context, stageID string) error {
	return s.stages.Delete(ctx, stageID)
}
