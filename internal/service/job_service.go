package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/repository"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// JobInput holds the fields of a new posting.
type JobInput struct {
	Title       string
	CompanyID   string
	Location    string
	Salary      string
	Type        string
	Description string
	Status      domain.JobStatus
}

// JobPatch holds optional posting changes; nil fields are left untouched.
type JobPatch struct {
	Title       *string
	CompanyID   *string
	Location    *string
	Salary      *string
	Type        *string
	Description *string
	Status      *domain.JobStatus
}

// JobQuery filters job listings.
type JobQuery struct {
	Query     string
	Status    *domain.JobStatus
	CompanyID *string
}

// JobService manages job postings.
type JobService struct {
	jobs repository.JobRepository
}

// NewJobService builds the service.
func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

func (s *JobService) List(ctx context.Context, q JobQuery) ([]domain.Job, error) {
	jobs, err := s.jobs.List(ctx, repository.JobFilter{
		Query:     strings.TrimSpace(q.Query),
		Status:    q.Status,
		CompanyID: q.CompanyID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// unknown or malformed company id filter
			return []domain.Job{}, nil
		}
		return nil, apperrors.NewInternalError(err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Job")
	}
	return job, nil
}

// Create inserts a posting; the referenced company must exist.
func (s *JobService) Create(ctx context.Context, in JobInput) (*domain.Job, error) {
	status := in.Status
	if status == "" {
		status = domain.JobStatusActive
	}
	job := &domain.Job{
		Title:       strings.TrimSpace(in.Title),
		CompanyID:   strings.TrimSpace(in.CompanyID),
		Location:    strings.TrimSpace(in.Location),
		Salary:      strings.TrimSpace(in.Salary),
		Type:        strings.TrimSpace(in.Type),
		Description: in.Description,
		Status:      status,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, mapRepoError(err, "Company")
	}
	return s.reload(ctx, job)
}

func (s *JobService) Update(ctx context.Context, id string, patch JobPatch) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Job")
	}

	missing := "Job"
	applyString(&job.Title, patch.Title)
	if patch.CompanyID != nil && strings.TrimSpace(*patch.CompanyID) != job.CompanyID {
		job.CompanyID = strings.TrimSpace(*patch.CompanyID)
		missing = "Company"
	}
	applyString(&job.Location, patch.Location)
	applyString(&job.Salary, patch.Salary)
	applyString(&job.Type, patch.Type)
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, mapRepoError(err, missing)
	}
	return s.reload(ctx, job)
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	return mapRepoError(s.jobs.Delete(ctx, id), "Job")
}

// reload re-reads a written posting so the embedded company name is current.
func (s *JobService) reload(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	fresh, err := s.jobs.GetByID(ctx, job.ID)
	if err != nil {
		return nil, mapRepoError(err, "Job")
	}
	return fresh, nil
}
