package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-admin/internal/api/dto"
	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/service"
)

// JobsHandler exposes job endpoints.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobService}
}

// List handles GET /jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	var q dto.JobListQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	query := service.JobQuery{Query: q.Q}
	if q.Status != "" {
		status := domain.JobStatus(q.Status)
		query.Status = &status
	}
	if q.CompanyID != "" {
		query.CompanyID = &q.CompanyID
	}
	jobs, err := h.jobs.List(c.UserContext(), query)
	if err != nil {
		return err
	}
	return c.JSON(items(dto.NewJobList(jobs)))
}

// Get handles GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// Create handles POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	job, err := h.jobs.Create(c.UserContext(), service.JobInput{
		Title:       req.Title,
		CompanyID:   req.CompanyID,
		Location:    req.Location,
		Salary:      req.Salary,
		Type:        req.Type,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewJobResponse(job))
}

// Update handles PUT and PATCH /jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	job, err := h.jobs.Update(c.UserContext(), c.Params("id"), service.JobPatch{
		Title:       req.Title,
		CompanyID:   req.CompanyID,
		Location:    req.Location,
		Salary:      req.Salary,
		Type:        req.Type,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// Delete handles DELETE /jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	if err := h.jobs.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c)
}
