package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tmorland/wayfare/internal/service"
	"go.uber.org/zap"
)

func listJourneys(journeys service.JourneyService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		summaries, err := journeys.List(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		out := make([]journeySummaryResponse, 0, len(summaries))
		for _, s := range summaries {
			out = append(out, journeySummaryResponse{
				JourneyID:     s.ID,
				Name:          s.Name,
				CompletionPct: s.Completion,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

func createJourney(journeys service.JourneyService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createJourneyRequest
		if err := c.BindJSON(&req); err != nil {
			return // BindJSON already wrote a 400
		}
		j, err := journeys.Create(c.Request.Context(), req.Name)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		view, err := journeys.GetByID(c.Request.Context(), j.ID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, toJourneyResponse(view))
	}
}

func getJourney(journeys service.JourneyService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := journeys.GetByID(c.Request.Context(), c.Param("journeyID"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, toJourneyResponse(view))
	}
}

func deleteJourney(journeys service.JourneyService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := journeys.Delete(c.Request.Context(), c.Param("journeyID")); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func addStage(stages service.StageService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addStageRequest
		if err := c.BindJSON(&req); err != nil {
			return
		}
		stage, err := stages.Add(c.Request.Context(), c.Param("journeyID"), req.Name)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, stageResponse{
			StageID:       stage.ID,
			Name:          stage.Name,
			CompletionPct: 0, // a new stage has no steps
			Steps:         []stepResponse{},
		})
	}
}

func deleteStage(stages service.StageService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := stages.Delete(c.Request.Context(), c.Param("stageID")); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func addStep(steps service.StepService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addStepRequest
		if err := c.BindJSON(&req); err != nil {
			return
		}
		step, err := steps.Add(c.Request.Context(), c.Param("stageID"), req.Name, req.Status)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, stepResponse{
			StepID: step.ID,
			Name:   step.Name,
			Status: string(step.Status),
		})
	}
}

func updateStep(steps service.StepService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStepRequest
		if err := c.BindJSON(&req); err != nil {
			return
		}
		step, err := steps.UpdateStatus(c.Request.Context(), c.Param("stepID"), req.Status)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, stepResponse{
			StepID: step.ID,
			Name:   step.Name,
			Status: string(step.Status),
		})
	}
}

func deleteStep(steps service.StepService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := steps.Delete(c.Request.Context(), c.Param("stepID")); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
