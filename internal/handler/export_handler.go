package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"apjatelpmo/internal/model"
	"apjatelpmo/internal/report"
	"apjatelpmo/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	projects *service.ProjectService
	reports  *service.ReportService
	exports  *service.ExportService
}

func NewExportHandler(projects *service.ProjectService, reports *service.ReportService, exports *service.ExportService) *ExportHandler {
	return &ExportHandler{projects: projects, reports: reports, exports: exports}
}

// summarize loads the caller's scoped projects and applies the query filter,
// returning the same summary the dashboard renders.
func (h *ExportHandler) summarize(c *gin.Context) (*service.DashboardSummary, bool) {
	vendorID, ok := callerVendorID(c)
	if !ok {
		return nil, false
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
		return nil, false
	}

	projects, err := h.projects.List(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return nil, false
	}

	lookup := model.NewVendorLookup(h.projects.Vendors(c.Request.Context()))
	summary := h.reports.Summarize(projects, criteria, lookup, isAdmin)
	return &summary, true
}

func exportFilename(base, ext string) string {
	return fmt.Sprintf("%s_%s.%s", base, time.Now().Format("2006-01-02"), ext)
}

func (h *ExportHandler) writeCSV(c *gin.Context, base string, t service.Table) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(base, "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.exports.CSV(t)))
}

func (h *ExportHandler) writeXLSX(c *gin.Context, base, sheetName string, t service.Table) {
	f, err := h.exports.XLSX(t, sheetName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(base, "xlsx")))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// ProjectsCSV handles GET /export/projects.csv
func (h *ExportHandler) ProjectsCSV(c *gin.Context) {
	summary, ok := h.summarize(c)
	if !ok {
		return
	}
	h.writeCSV(c, "laporan_proyek", h.exports.ProjectTable(summary.Projects))
}

// ProjectsXLSX handles GET /export/projects.xlsx
func (h *ExportHandler) ProjectsXLSX(c *gin.Context) {
	summary, ok := h.summarize(c)
	if !ok {
		return
	}
	h.writeXLSX(c, "laporan_proyek", "Proyek", h.exports.ProjectTable(summary.Projects))
}

// AdminCSV handles GET /export/admin.csv
func (h *ExportHandler) AdminCSV(c *gin.Context) {
	summary, ok := h.summarize(c)
	if !ok {
		return
	}
	h.writeCSV(c, "laporan_administrasi", h.exports.AdminTable(summary.AdminRows))
}

// AdminXLSX handles GET /export/admin.xlsx
func (h *ExportHandler) AdminXLSX(c *gin.Context) {
	summary, ok := h.summarize(c)
	if !ok {
		return
	}
	h.writeXLSX(c, "laporan_administrasi", "Administrasi", h.exports.AdminTable(summary.AdminRows))
}
