package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/service"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// JobHandler proxies job-posting management calls.
type JobHandler struct {
	jobs *service.JobService
}

// NewJobHandler constructs JobHandler.
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List godoc
// @Summary List job postings
// @Tags Jobs
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Search text"
// @Param type query string false "Job type"
// @Param workType query string false "Work arrangement"
// @Success 200 {object} response.Envelope
// @Router /api/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	res, err := h.jobs.List(c.Request.Context(), tokenFromContext(c), parseListQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Create godoc
// @Summary Create a job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param payload body models.JobPayload true "Job payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var payload models.JobPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing required fields"))
		return
	}
	res, err := h.jobs.Create(c.Request.Context(), tokenFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Update godoc
// @Summary Update a job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param payload body models.JobPayload true "Job payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	var payload models.JobPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid job payload"))
		return
	}
	res, err := h.jobs.Update(c.Request.Context(), tokenFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Delete godoc
// @Summary Delete a job posting
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Router /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	res, err := h.jobs.Delete(c.Request.Context(), tokenFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}
