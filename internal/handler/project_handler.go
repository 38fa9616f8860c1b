package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"apjatelpmo/internal/model"
	"apjatelpmo/internal/service"
	"apjatelpmo/internal/sheet"
)

// maxUploadBytes bounds document/photo uploads forwarded to Drive.
const maxUploadBytes = 25 << 20

type ProjectHandler struct {
	projects *service.ProjectService
}

func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// callerVendorID resolves which vendor's data the request may see. Admin
// callers may narrow to one vendor with ?vendorId=.
func callerVendorID(c *gin.Context) (string, bool) {
	vendorID, ok := c.Get("vendor_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "vendor not authenticated"})
		return "", false
	}
	return vendorID.(string), true
}

func isAdminCaller(c *gin.Context) bool {
	isAdmin, _ := c.Get("is_admin")
	admin, _ := isAdmin.(bool)
	return admin
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	vendorID, ok := callerVendorID(c)
	if !ok {
		return
	}
	scope := vendorID
	if isAdminCaller(c) {
		if selected := c.Query("vendorId"); selected != "" && selected != "all" {
			scope = selected
		}
	}

	projects, err := h.projects.List(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// Save handles POST /projects
func (h *ProjectHandler) Save(c *gin.Context) {
	vendorID, ok := callerVendorID(c)
	if !ok {
		return
	}

	var p model.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project payload"})
		return
	}

	// Non-admin callers can only write their own projects.
	if !isAdminCaller(c) {
		if p.VendorID == "" {
			p.VendorID = vendorID
		} else if p.VendorID != vendorID {
			c.JSON(http.StatusForbidden, gin.H{"error": "cannot save another vendor's project"})
			return
		}
	}

	saved, err := h.projects.Save(c.Request.Context(), vendorID, p)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": saved})
}

// Vendors handles GET /vendors
func (h *ProjectHandler) Vendors(c *gin.Context) {
	if _, ok := callerVendorID(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": h.projects.Vendors(c.Request.Context())})
}

// Upload handles POST /uploads (multipart form: file)
func (h *ProjectHandler) Upload(c *gin.Context) {
	if _, ok := callerVendorID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	url, err := h.projects.UploadFile(c.Request.Context(), data, fileHeader.Filename, mimeType)
	if err != nil {
		if errors.Is(err, sheet.ErrUpload) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upload to drive failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
