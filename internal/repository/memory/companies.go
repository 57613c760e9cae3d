package memory

import (
	"context"
	"time"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/repository"
)

type companyRepository struct {
	s *Store
}

func (r *companyRepository) Create(_ context.Context, company *domain.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var last time.Time
	for _, existing := range r.s.companies {
		if existing.CreatedAt.After(last) {
			last = existing.CreatedAt
		}
	}
	company.ID = newID()
	company.CreatedAt = r.s.stamp(last)
	company.UpdatedAt = company.CreatedAt
	company.JobsCount = 0
	r.s.companies[company.ID] = *company
	return nil
}

func (r *companyRepository) Update(_ context.Context, company *domain.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.companies[company.ID]
	if !ok {
		return repository.ErrNotFound
	}
	company.CreatedAt = existing.CreatedAt
	company.UpdatedAt = r.s.stamp(existing.UpdatedAt)
	r.s.companies[company.ID] = *company
	return nil
}

func (r *companyRepository) GetByID(_ context.Context, id string) (*domain.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	company, ok := r.s.companies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	company.JobsCount = r.s.jobsCountLocked(id)
	return &company, nil
}

func (r *companyRepository) List(_ context.Context, filter repository.CompanyFilter) ([]domain.Company, error) {
	r.s.mu.RLock()
	result := []domain.Company{}
	for _, company := range r.s.companies {
		if matches(filter.Query, company.Name, company.Industry, company.City) {
			company.JobsCount = r.s.jobsCountLocked(company.ID)
			result = append(result, company)
		}
	}
	r.s.mu.RUnlock()

	newestFirst(result, func(c domain.Company) time.Time { return c.CreatedAt })
	return page(result, filter.Limit, filter.Offset), nil
}

func (r *companyRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.companies, id)
	for jobID, job := range r.s.jobs {
		if job.CompanyID == id {
			delete(r.s.jobs, jobID)
		}
	}
	return nil
}

func (r *companyRepository) Count(context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.companies), nil
}

func (s *Store) jobsCountLocked(companyID string) int {
	n := 0
	for _, job := range s.jobs {
		if job.CompanyID == companyID {
			n++
		}
	}
	return n
}
