package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/repository"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// RecentJobsLimit is the number of postings shown on the dashboard.
const RecentJobsLimit = 8

// DashboardService aggregates headline statistics.
type DashboardService struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	jobs      repository.JobRepository
}

// NewDashboardService builds the service.
func NewDashboardService(users repository.UserRepository, companies repository.CompanyRepository, jobs repository.JobRepository) *DashboardService {
	return &DashboardService{users: users, companies: companies, jobs: jobs}
}

// Overview runs the counters and the recent-jobs query concurrently.
func (s *DashboardService) Overview(ctx context.Context) (*domain.Dashboard, error) {
	var (
		dash   domain.Dashboard
		active = domain.JobStatusActive
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		dash.Stats.Users, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		dash.Stats.Companies, err = s.companies.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		dash.Stats.Jobs, err = s.jobs.Count(gctx, repository.JobFilter{})
		return err
	})
	g.Go(func() (err error) {
		dash.Stats.ActiveJobs, err = s.jobs.Count(gctx, repository.JobFilter{Status: &active})
		return err
	})
	g.Go(func() (err error) {
		dash.RecentJobs, err = s.jobs.List(gctx, repository.JobFilter{Limit: RecentJobsLimit})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &dash, nil
}
