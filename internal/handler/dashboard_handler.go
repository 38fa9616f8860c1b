package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apjatelpmo/internal/model"
	"apjatelpmo/internal/report"
	"apjatelpmo/internal/service"
)

type DashboardHandler struct {
	projects *service.ProjectService
	reports  *service.ReportService
}

func NewDashboardHandler(projects *service.ProjectService, reports *service.ReportService) *DashboardHandler {
	return &DashboardHandler{projects: projects, reports: reports}
}

// Summary handles GET /dashboard/summary. Filter criteria arrive as query
// parameters and combine with AND semantics.
func (h *DashboardHandler) Summary(c *gin.Context) {
	vendorID, ok := callerVendorID(c)
	if !ok {
		return
	}
	isAdmin := isAdminCaller(c)

	scope := vendorID
	if isAdmin {
		if selected := c.Query("vendorId"); selected != "" && selected != "all" {
			scope = selected
		}
	}

	var criteria report.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter criteria"})
		return
	}

	projects, err := h.projects.List(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	lookup := model.NewVendorLookup(h.projects.Vendors(c.Request.Context()))
	c.JSON(http.StatusOK, h.reports.Summarize(projects, criteria, lookup, isAdmin))
}
