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

type journeyService struct {
	journeys repository.JourneyRepo
	stages   repository.StageRepo
	steps    repository.StepRepo
	uow      db.UnitOfWork
}

func NewJourneyService(
	journeys repository.JourneyRepo,
	stages repository.StageRepo,
	steps repository.StepRepo,
	uow db.UnitOfWork,
) JourneyService {
	return &journeyService{journeys: journeys, stages: stages, steps: steps, uow: uow}
}

func (s *journeyService) Create(ctx context.Context, name string) (*domain.Journey, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("journey name required: %w", ErrInvalidInput)
	}

	now := time.Now().UTC()
	j := &domain.Journey{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.journeys.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// GetByID returns the full hierarchy with completion freshly derived at both
// the stage and journey level. Journey completion aggregates the union of all
// steps, so stages with more steps weigh proportionally more.
func (s *journeyService) GetByID(ctx context.Context, id string) (*JourneyView, error) {
	j, err := s.journeys.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stages, err := s.stages.ListByJourney(ctx, j.ID)
	if err != nil {
		return nil, err
	}

	steps, err := s.steps.ListByJourney(ctx, j.ID)
	if err != nil {
		return nil, err
	}

	byStage := make(map[string][]*domain.Step, len(stages))
	for _, step := range steps {
		byStage[step.StageID] = append(byStage[step.StageID], step)
	}

	view := &JourneyView{
		ID:     j.ID,
		Name:   j.Name,
		Stages: make([]StageView, 0, len(stages)),
	}

	allStatuses := make([]domain.StepStatus, 0, len(steps))
	for _, stage := range stages {
		stageSteps := byStage[stage.ID]
		statuses := make([]domain.StepStatus, 0, len(stageSteps))
		stepViews := make([]StepView, 0, len(stageSteps))
		for _, step := range stageSteps {
			statuses = append(statuses, step.Status)
			stepViews = append(stepViews, StepView{ID: step.ID, Name: step.Name, Status: step.Status})
		}
		allStatuses = append(allStatuses, statuses...)

		view.Stages = append(view.Stages, StageView{
			ID:         stage.ID,
			Name:       stage.Name,
			Completion: domain.Completion(statuses),
			Steps:      stepViews,
		})
	}
	view.Completion = domain.Completion(allStatuses)

	return view, nil
}

func (s *journeyService) List(ctx context.Context) ([]JourneySummary, error) {
	journeys, err := s.journeys.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]JourneySummary, 0, len(journeys))
	for _, j := range journeys {
		steps, err := s.steps.ListByJourney(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		statuses := make([]domain.StepStatus, 0, len(steps))
		for _, step := range steps {
			statuses = append(statuses, step.Status)
		}
		summaries = append(summaries, JourneySummary{
			ID:         j.ID,
			Name:       j.Name,
			Completion: domain.Completion(statuses),
		})
	}
	return summaries, nil
}

func (s *journeyService) Delete(ctx context.Context, id string) error {
	return s.journeys.Delete(ctx, id)
}
