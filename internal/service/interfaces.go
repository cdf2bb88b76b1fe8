package service

import (
	"context"

	"github.com/tmorland/wayfare/internal/domain"
)

// StepView is a step as presented to access layers.
type StepView struct {
	ID     string
	Name   string
	Status domain.StepStatus
}

// StageView is a stage with its steps and derived completion percentage.
type StageView struct {
	ID         string
	Name       string
	Completion int
	Steps      []StepView
}

// JourneyView is the full hierarchy of a journey. Completion at both levels
// is computed at read time from the step statuses, never stored.
type JourneyView struct {
	ID         string
	Name       string
	Completion int
	Stages     []StageView
}

// JourneySummary is the list representation of a journey.
type JourneySummary struct {
	ID         string
	Name       string
	Completion int
}

type JourneyService interface {
	Create(ctx context.Context, name string) (*domain.Journey, error)
	GetByID(ctx context.Context, id string) (*JourneyView, error)
	List(ctx context.Context) ([]JourneySummary, error)
	Delete(ctx context.Context, id string) error
	SeedDemo(ctx context.Context) (*JourneyView, error)
}

type StageService interface {
	Add(ctx context.Context, journeyID, name string) (*domain.Stage, error)
	Delete(ctx context.Context, stageID string) error
}

type StepService interface {
	Add(ctx context.Context, stageID, name, status string) (*domain.Step, error)
	UpdateStatus(ctx context.Context, stepID, status string) (*domain.Step, error)
	Delete(ctx context.Context, stepID string) error
}
