package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"apjatelpmo/internal/model"
	"apjatelpmo/internal/schedule"
	"apjatelpmo/internal/service"
)

type ScheduleHandler struct {
	projects *service.ProjectService
}

func NewScheduleHandler(projects *service.ProjectService) *ScheduleHandler {
	return &ScheduleHandler{projects: projects}
}

type scheduleReport struct {
	Items          []schedule.ItemCheck `json:"items"`
	TimelineWeeks  int                  `json:"timelineWeeks"`
	TimelineMonths int                  `json:"timelineMonths"`
}

func buildScheduleReport(items []model.ScheduleItem) scheduleReport {
	return scheduleReport{
		Items:          schedule.CheckConflicts(items),
		TimelineWeeks:  schedule.TimelineWeeks(items),
		TimelineMonths: schedule.TimelineMonths(items),
	}
}

// ProjectConflicts handles GET /projects/:id/schedule/conflicts
func (h *ScheduleHandler) ProjectConflicts(c *gin.Context) {
	vendorID, ok := callerVendorID(c)
	if !ok {
		return
	}

	project, err := h.projects.Get(c.Request.Context(), vendorID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}
	c.JSON(http.StatusOK, buildScheduleReport(project.ScheduleItems))
}

// Check handles POST /schedule/check with an ad-hoc item list, so the
// planner can validate edits before saving.
func (h *ScheduleHandler) Check(c *gin.Context) {
	if _, ok := callerVendorID(c); !ok {
		return
	}

	var req struct {
		Items []model.ScheduleItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule payload"})
		return
	}
	c.JSON(http.StatusOK, buildScheduleReport(req.Items))
}
