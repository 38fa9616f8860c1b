package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"apjatelpmo/internal/repository"
	"apjatelpmo/internal/service"
)

type HistoryHandler struct {
	projects *service.ProjectService
	history  *repository.HistoryRepository
}

func NewHistoryHandler(projects *service.ProjectService, history *repository.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{projects: projects, history: history}
}

// ListByProject handles GET /projects/:id/history. The project lookup runs
// first so vendor scoping applies before any history rows leak out.
func (h *HistoryHandler) ListByProject(c *gin.Context) {
	vendorID, ok := callerVendorID(c)
	if !ok {
		return
	}

	projectID := c.Param("id")
	if _, err := h.projects.Get(c.Request.Context(), vendorID, projectID); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}

	entries, err := h.history.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}
