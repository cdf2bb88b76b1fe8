package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/tmorland/wayfare/internal/domain"
)

// Step options
type StepOption func(*domain.Step)

func WithStatus(s domain.StepStatus) StepOption {
	return func(step *domain.Step) {
		step.Status = s
	}
}

func WithStepOrder(i int) StepOption {
	return func(step *domain.Step) {
		step.OrderIndex = i
	}
}

// Stage options
type StageOption func(*domain.Stage)

func WithStageOrder(i int) StageOption {
	return func(s *domain.Stage) {
		s.OrderIndex = i
	}
}

func NewTestJourney(name string) *domain.Journey {
	now := time.Now().UTC()
	return &domain.Journey{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestStage(journeyID, name string, opts ...StageOption) *domain.Stage {
	now := time.Now().UTC()
	s := &domain.Stage{
		ID:        uuid.New().String(),
		JourneyID: journeyID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestStep(stageID, name string, opts ...StepOption) *domain.Step {
	now := time.Now().UTC()
	s := &domain.Step{
		ID:        uuid.New().String(),
		StageID:   stageID,
		Name:      name,
		Status:    domain.StepNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
