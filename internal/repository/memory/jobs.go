package memory

import (
	"context"
	"time"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/repository"
)

type jobRepository struct {
	s *Store
}

func (r *jobRepository) Create(_ context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	company, ok := r.s.companies[job.CompanyID]
	if !ok {
		return repository.ErrNotFound
	}

	var last time.Time
	for _, existing := range r.s.jobs {
		if existing.CreatedAt.After(last) {
			last = existing.CreatedAt
		}
	}
	job.ID = newID()
	job.CompanyName = company.Name
	job.CreatedAt = r.s.stamp(last)
	job.UpdatedAt = job.CreatedAt
	r.s.jobs[job.ID] = *job
	return nil
}

func (r *jobRepository) Update(_ context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.jobs[job.ID]
	if !ok {
		return repository.ErrNotFound
	}
	company, ok := r.s.companies[job.CompanyID]
	if !ok {
		return repository.ErrNotFound
	}
	job.CompanyName = company.Name
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = r.s.stamp(existing.UpdatedAt)
	r.s.jobs[job.ID] = *job
	return nil
}

func (r *jobRepository) GetByID(_ context.Context, id string) (*domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	job, ok := r.s.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	job.CompanyName = r.s.companies[job.CompanyID].Name
	return &job, nil
}

func (r *jobRepository) List(_ context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	r.s.mu.RLock()
	result := []domain.Job{}
	for _, job := range r.s.jobs {
		if keepJob(job, filter) {
			job.CompanyName = r.s.companies[job.CompanyID].Name
			result = append(result, job)
		}
	}
	r.s.mu.RUnlock()

	newestFirst(result, func(j domain.Job) time.Time { return j.CreatedAt })
	return page(result, filter.Limit, filter.Offset), nil
}

func (r *jobRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.jobs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.jobs, id)
	return nil
}

func (r *jobRepository) Count(_ context.Context, filter repository.JobFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, job := range r.s.jobs {
		if keepJob(job, filter) {
			n++
		}
	}
	return n, nil
}

func keepJob(job domain.Job, filter repository.JobFilter) bool {
	if filter.Status != nil && job.Status != *filter.Status {
		return false
	}
	if filter.CompanyID != nil && job.CompanyID != *filter.CompanyID {
		return false
	}
	return matches(filter.Query, job.Title, job.Location)
}
