package repository

import (
	"context"

	"github.com/tmorland/wayfare/internal/domain"
)

type JourneyRepo interface {
	Create(ctx context.Context, j *domain.Journey) error
	GetByID(ctx context.Context, id string) (*domain.Journey, error)
	List(ctx context.Context) ([]*domain.Journey, error)
	Delete(ctx context.Context, id string) error
}

type StageRepo interface {
	Create(ctx context.Context, s *domain.Stage) error
	GetByID(ctx context.Context, id string) (*domain.Stage, error)
	ListByJourney(ctx context.Context, journeyID string) ([]*domain.Stage, error)
	NextOrderIndex(ctx context.Context, journeyID string) (int, error)
	Delete(ctx context.Context, id string) error
}

type StepRepo interface {
	Create(ctx context.Context, s *domain.Step) error
	GetByID(ctx context.Context, id string) (*domain.Step, error)
	ListByStage(ctx context.Context, stageID string) ([]*domain.Step, error)
	ListByJourney(ctx context.Context, journeyID string) ([]*domain.Step, error)
	NextOrderIndex(ctx context.Context, stageID string) (int, error)
	Update(ctx context.Context, s *domain.Step) error
	Delete(ctx context.Context, id string) error
}
