package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appjob "github.com/jobtrackhq/jobtrack-go/internal/application/job"
	"github.com/jobtrackhq/jobtrack-go/internal/domain/job"
	"github.com/jobtrackhq/jobtrack-go/pkg/response"
	"github.com/jobtrackhq/jobtrack-go/pkg/utils"
)

// JobHandler handles job-related HTTP endpoints.
type JobHandler struct {
	svc *appjob.Service
}

// NewJobHandler creates a new job handler.
func NewJobHandler(svc *appjob.Service) *JobHandler {
	return &JobHandler{svc: svc}
}

// writeJobError maps engine errors onto the HTTP taxonomy. Anything
// unrecognized becomes a generic 500 with full detail kept on the
// server side only.
func writeJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appjob.ErrCompanyAndPositionRequired),
		errors.Is(err, appjob.ErrInvalidStatus),
		errors.Is(err, appjob.ErrInvalidPriority),
		errors.Is(err, appjob.ErrNotesTooLong):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, appjob.ErrJobNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, appjob.ErrNotJobOwner):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("job handler: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
	}
}

// CreateJob godoc
// @Summary Create a job application
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param job body job.CreateJobRequest true "Job fields"
// @Success 201 {object} job.Job
// @Failure 400 {object} response.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req appjob.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	created, err := h.svc.CreateJob(c.Request.Context(), identity, req)
	if err != nil {
		writeJobError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListJobs godoc
// @Summary List job applications (filtered, searched, paginated)
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param search query string false "Substring match on company or position"
// @Param sort query string false "latest or oldest"
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} response.JobListResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	query := appjob.ListJobsQuery{
		Status:   job.Status(c.Query("status")),
		Priority: job.Priority(c.Query("priority")),
		Search:   c.Query("search"),
		Sort:     job.Sort(c.Query("sort")),
		Page:     intQuery(c, "page", appjob.DefaultPage),
		Limit:    intQuery(c, "limit", appjob.DefaultLimit),
	}

	result, err := h.svc.ListJobs(c.Request.Context(), identity, query)
	if err != nil {
		writeJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.JobListResponse{
		TotalJobs:   result.TotalJobs,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		Jobs:        result.Jobs,
	})
}

// UpdateJob godoc
// @Summary Update a job application
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param patch body job.UpdateJobRequest true "Partial job fields"
// @Success 200 {object} job.Job
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var patch appjob.UpdateJobRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	updated, err := h.svc.UpdateJob(c.Request.Context(), identity, c.Param("id"), patch)
	if err != nil {
		writeJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteJob godoc
// @Summary Archive a job application (soft delete)
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.svc.ArchiveJob(c.Request.Context(), identity, c.Param("id")); err != nil {
		writeJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Job archived successfully"})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
