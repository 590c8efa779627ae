package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
	"github.com/ijaz003/Employment-Exchange/internal/dtos"
	"github.com/ijaz003/Employment-Exchange/internal/middlewares"
	"github.com/ijaz003/Employment-Exchange/internal/models"
	"github.com/ijaz003/Employment-Exchange/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
	LLM  *services.LLMService
}

func NewJobHandler(jobs *services.JobService, llm *services.LLMService) *JobHandler {
	return &JobHandler{Jobs: jobs, LLM: llm}
}

func (h *JobHandler) GetAllJobs(c *gin.Context) {
	jobs, err := h.Jobs.GetAllOpen()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

func (h *JobHandler) PostJob(c *gin.Context) {
	var req dtos.JobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Jobs.Post(middlewares.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job posted successfully!",
		"job":     job,
	})
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	jobs, err := h.Jobs.GetMyJobs(middlewares.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"myJobs":  jobs,
	})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Jobs.Update(middlewares.CurrentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated successfully.",
		"job":     job,
	})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	if err := h.Jobs.Delete(middlewares.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully.",
	})
}

func (h *JobHandler) GetSingleJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := h.Jobs.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

// ExtractPosting lets an employer paste a raw job ad and get back structured
// draft fields for the posting form.
func (h *JobHandler) ExtractPosting(c *gin.Context) {
	if actor := middlewares.CurrentUser(c); actor.Role == models.RoleJobSeeker {
		respondError(c, apperrors.New(apperrors.KindForbidden, "Job Seekers are not allowed to post jobs."))
		return
	}
	if !h.LLM.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Posting extraction is not configured.",
		})
		return
	}
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	extracted, err := h.LLM.ExtractPosting(c.Request.Context(), req.RawContent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Extraction failed: " + err.Error()})
		return
	}
	// Raw message so the model's JSON is not re-escaped as a string.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extracted),
	})
}

// jobID parses the :id route param; an unparseable id cannot reference any
// posting, so it reads as not found.
func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperrors.New(apperrors.KindNotFound, "Job not found."))
		return 0, false
	}
	return uint(id), true
}
