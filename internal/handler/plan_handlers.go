package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"film-server/planner/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// previewPlan computes a draft plan without persisting anything. The optional
// body selects the start date; without it planning starts tomorrow.
func (h *PlannerHandler) previewPlan(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid project id"}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	var req previewPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request data: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	var startDate time.Time
	if req.StartDate != "" {
		startDate, err = time.Parse(dateLayout, req.StartDate)
		if err != nil {
			errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid start_date, expected YYYY-MM-DD"}
			c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
			return
		}
	}

	result, err := h.plannerService.BuildPlan(c.Request.Context(), projectID, startDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	previewsTotal.Inc()
	unplannedScenesTotal.Add(float64(len(result.UnplannedScenes)))

	c.JSON(http.StatusOK, toPlanResponse(result))
}

// commitPlan replaces the project's persisted shoot days with the submitted
// plan and derives crew calls for each day.
func (h *PlannerHandler) commitPlan(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid project id"}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	var req commitPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request data: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	days, err := req.toDays()
	if err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	if err := h.plannerService.CommitPlan(c.Request.Context(), projectID, days); err != nil {
		handleServiceError(c, err)
		return
	}

	commitsTotal.Inc()

	c.Status(http.StatusNoContent)
}
