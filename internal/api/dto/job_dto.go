package dto

import (
	"time"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// CreateJobRequest payload for POST /jobs.
type CreateJobRequest struct {
	Title       string           `json:"title" validate:"required,notblank,max=200"`
	CompanyID   string           `json:"companyId" validate:"required,notblank"`
	Location    string           `json:"location" validate:"max=200"`
	Salary      string           `json:"salary" validate:"max=100"`
	Type        string           `json:"type" validate:"max=50"`
	Description string           `json:"description" validate:"max=10000"`
	Status      domain.JobStatus `json:"status" validate:"omitempty,oneof=active paused closed"`
}

// UpdateJobRequest payload for PUT/PATCH /jobs/:id. Absent fields are kept.
type UpdateJobRequest struct {
	Title       *string           `json:"title" validate:"omitnil,notblank,max=200"`
	CompanyID   *string           `json:"companyId" validate:"omitnil,notblank"`
	Location    *string           `json:"location" validate:"omitnil,max=200"`
	Salary      *string           `json:"salary" validate:"omitnil,max=100"`
	Type        *string           `json:"type" validate:"omitnil,max=50"`
	Description *string           `json:"description" validate:"omitnil,max=10000"`
	Status      *domain.JobStatus `json:"status" validate:"omitnil,oneof=active paused closed"`
}

// JobListQuery captures GET /jobs filters.
type JobListQuery struct {
	Q         string `query:"q" validate:"max=200"`
	Status    string `query:"status" validate:"omitempty,oneof=active paused closed"`
	CompanyID string `query:"companyId" validate:"omitempty,uuid"`
}

// JobCompany is the embedded company reference on a job.
type JobCompany struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JobResponse is the public view of a job.
type JobResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	CompanyID   string           `json:"companyId"`
	Company     JobCompany       `json:"company"`
	Location    string           `json:"location"`
	Salary      string           `json:"salary"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Status      domain.JobStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// NewJobResponse maps a domain job.
func NewJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		CompanyID:   j.CompanyID,
		Company:     JobCompany{ID: j.CompanyID, Name: j.CompanyName},
		Location:    j.Location,
		Salary:      j.Salary,
		Type:        j.Type,
		Description: j.Description,
		Status:      j.Status,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// NewJobList maps a slice of jobs.
func NewJobList(jobs []domain.Job) []JobResponse {
	items := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, NewJobResponse(&jobs[i]))
	}
	return items
}
