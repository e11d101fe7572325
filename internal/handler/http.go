package handler

import (
	"net/http"

	"film-server/planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler exposes the planner over HTTP.
type PlannerHandler struct {
	plannerService service.PlannerService
	logger         *zap.Logger
}

func NewPlannerHandler(plannerService service.PlannerService, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
		logger:         logger.Named("PlannerHandler"),
	}
}

func (h *PlannerHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/projects/:project_id/shooting-plan/preview", h.previewPlan)
		api.POST("/projects/:project_id/shooting-plan/commit", h.commitPlan)
	}
}

// RegisterHealth mounts the health endpoint outside the API group.
func RegisterHealth(router *gin.Engine) {
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
}
