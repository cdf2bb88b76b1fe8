package httpapi

import "github.com/tmorland/wayfare/internal/service"

// Wire representations. Field names follow the frontend contract:
// journey_id/stage_id/step_id, completion_pct, and the three canonical
// status strings.

type journeyResponse struct {
	JourneyID     string          `json:"journey_id"`
	Name          string          `json:"name"`
	CompletionPct int             `json:"completion_pct"`
	Stages        []stageResponse `json:"stages"`
}

type stageResponse struct {
	StageID       string         `json:"stage_id"`
	Name          string         `json:"name"`
	CompletionPct int            `json:"completion_pct"`
	Steps         []stepResponse `json:"steps"`
}

type stepResponse struct {
	StepID string `json:"step_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type journeySummaryResponse struct {
	JourneyID     string `json:"journey_id"`
	Name          string `json:"name"`
	CompletionPct int    `json:"completion_pct"`
}

type createJourneyRequest struct {
	Name string `json:"name"`
}

type addStageRequest struct {
	Name string `json:"name"`
}

type addStepRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type updateStepRequest struct {
	Status string `json:"status"`
}

func toJourneyResponse(v *service.JourneyView) journeyResponse {
	stages := make([]stageResponse, 0, len(v.Stages))
	for _, st := range v.Stages {
		steps := make([]stepResponse, 0, len(st.Steps))
		for _, step := range st.Steps {
			steps = append(steps, stepResponse{
				StepID: step.ID,
				Name:   step.Name,
				Status: string(step.Status),
			})
		}
		stages = append(stages, stageResponse{
			StageID:       st.ID,
			Name:          st.Name,
			CompletionPct: st.Completion,
			Steps:         steps,
		})
	}
	return journeyResponse{
		JourneyID:     v.ID,
		Name:          v.Name,
		CompletionPct: v.Completion,
		Stages:        stages,
	}
}
