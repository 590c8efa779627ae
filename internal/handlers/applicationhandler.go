package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
	"github.com/ijaz003/Employment-Exchange/internal/dtos"
	"github.com/ijaz003/Employment-Exchange/internal/middlewares"
	"github.com/ijaz003/Employment-Exchange/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Post accepts a multipart form: the text fields plus the resume file. The
// file may legitimately be absent; the service rejects that case itself so
// the check ordering (role, file, fields, job) lives in one place.
func (h *ApplicationHandler) Post(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data: " + err.Error()})
		return
	}

	var (
		resume   io.Reader
		filename string
	)
	if fh, err := c.FormFile("resume"); err == nil {
		f, err := fh.Open()
		if err != nil {
			respondError(c, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error"))
			return
		}
		defer f.Close()
		resume = f
		filename = fh.Filename
	}

	application, err := h.Applications.Submit(c.Request.Context(), middlewares.CurrentUser(c), &req, resume, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Application submitted successfully.",
		"application": application,
	})
}

func (h *ApplicationHandler) EmployerGetAll(c *gin.Context) {
	applications, err := h.Applications.EmployerGetAll(middlewares.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": applications,
	})
}

func (h *ApplicationHandler) JobseekerGetAll(c *gin.Context) {
	applications, err := h.Applications.JobseekerGetAll(middlewares.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": applications,
	})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperrors.New(apperrors.KindNotFound, "Application not found."))
		return
	}
	if err := h.Applications.Delete(middlewares.CurrentUser(c), uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application deleted successfully.",
	})
}
