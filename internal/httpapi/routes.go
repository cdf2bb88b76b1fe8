package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tmorland/wayfare/internal/service"
	"go.uber.org/zap"
)

// Services bundles the core service interfaces the API exposes.
type Services struct {
	Journeys service.JourneyService
	Stages   service.StageService
	Steps    service.StepService
}

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(svcs Services, logger *zap.Logger, corsOrigin string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), corsMiddleware(corsOrigin))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/journeys", listJourneys(svcs.Journeys, logger))
		api.POST("/journeys", createJourney(svcs.Journeys, logger))
		api.GET("/journeys/:journeyID", getJourney(svcs.Journeys, logger))
		api.DELETE("/journeys/:journeyID", deleteJourney(svcs.Journeys, logger))
		api.POST("/journeys/:journeyID/stages", addStage(svcs.Stages, logger))
		api.DELETE("/stages/:stageID", deleteStage(svcs.Stages, logger))
		api.POST("/stages/:stageID/steps", addStep(svcs.Steps, logger))
		api.PATCH("/steps/:stepID", updateStep(svcs.Steps, logger))
		api.DELETE("/steps/:stepID", deleteStep(svcs.Steps, logger))
	}

	return router
}
