package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/storage"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestCompanyAndJobLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	acme, err := f.companies.Create(ctx, CompanyInput{Name: " Acme ", Industry: "Tech", City: "Berlin"})
	require.NoError(t, err)
	require.Equal(t, "Acme", acme.Name)
	require.Equal(t, domain.CompanyStatusActive, acme.Status)

	_, err = f.jobs.Create(ctx, JobInput{Title: "Ghost", CompanyID: "missing"})
	de := requireCode(t, err, apperrors.CodeNotFound)
	require.Equal(t, "Company not found", de.Message)

	job, err := f.jobs.Create(ctx, JobInput{Title: "Go Developer", CompanyID: acme.ID, Location: "Remote", Type: "Full-time"})
	require.NoError(t, err)
	require.Equal(t, "Acme", job.CompanyName)
	require.Equal(t, domain.JobStatusActive, job.Status)

	paused := domain.JobStatusPaused
	updated, err := f.jobs.Update(ctx, job.ID, JobPatch{Status: &paused, Salary: ptr("100k")})
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusPaused, updated.Status)
	require.Equal(t, "100k", updated.Salary)
	require.Equal(t, "Go Developer", updated.Title)

	_, err = f.jobs.Update(ctx, job.ID, JobPatch{CompanyID: ptr("missing")})
	de = requireCode(t, err, apperrors.CodeNotFound)
	require.Equal(t, "Company not found", de.Message)

	renamed, err := f.companies.Update(ctx, acme.ID, CompanyPatch{Name: ptr("Acme GmbH")})
	require.NoError(t, err)
	require.Equal(t, "Acme GmbH", renamed.Name)
	require.Equal(t, "Berlin", renamed.City)

	listed, err := f.companies.List(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, 1, listed[0].JobsCount)

	found, err := f.jobs.List(ctx, JobQuery{Status: &paused})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Acme GmbH", found[0].CompanyName)

	require.NoError(t, f.companies.Delete(ctx, acme.ID))
	_, err = f.jobs.Get(ctx, job.ID)
	requireCode(t, err, apperrors.CodeNotFound)
	requireCode(t, f.companies.Delete(ctx, acme.ID), apperrors.CodeNotFound)
	requireCode(t, f.jobs.Delete(ctx, job.ID), apperrors.CodeNotFound)
}

func TestCompanyService_UploadLogo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	local, err := storage.NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)
	companies := NewCompanyService(f.store.Companies(), local, zap.NewNop())

	acme, err := companies.Create(ctx, CompanyInput{Name: "Acme"})
	require.NoError(t, err)

	_, err = companies.UploadLogo(ctx, acme.ID, []byte("plain text, not an image"))
	requireCode(t, err, apperrors.CodeValidation)

	_, err = companies.UploadLogo(ctx, acme.ID, make([]byte, MaxLogoBytes+1))
	requireCode(t, err, apperrors.CodeValidation)

	_, err = companies.UploadLogo(ctx, "missing", pngHeader)
	requireCode(t, err, apperrors.CodeNotFound)

	first, err := companies.UploadLogo(ctx, acme.ID, pngHeader)
	require.NoError(t, err)
	require.Contains(t, first.LogoURL, "/files/logos/")
	firstKey := first.LogoKey

	second, err := companies.UploadLogo(ctx, acme.ID, pngHeader)
	require.NoError(t, err)
	require.NotEqual(t, firstKey, second.LogoKey)
	require.NoFileExists(t, local.LocalBaseDir()+"/"+firstKey)
	require.FileExists(t, local.LocalBaseDir()+"/"+second.LogoKey)
}

func TestDashboardAndSettings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	_, _, err := f.auth.Signup(ctx, SignupInput{Name: "Ann", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	acme, err := f.companies.Create(ctx, CompanyInput{Name: "Acme"})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		status := domain.JobStatusActive
		if i%2 == 1 {
			status = domain.JobStatusClosed
		}
		_, err := f.jobs.Create(ctx, JobInput{Title: "Job", CompanyID: acme.ID, Status: status})
		require.NoError(t, err)
	}

	dash, err := NewDashboardService(f.store.Users(), f.store.Companies(), f.store.Jobs()).Overview(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.DashboardStats{Users: 1, Companies: 1, Jobs: 10, ActiveJobs: 5}, dash.Stats)
	require.Len(t, dash.RecentJobs, RecentJobsLimit)
	require.Equal(t, domain.JobStatusClosed, dash.RecentJobs[0].Status)

	settings := NewSettingsService(f.store.Settings())
	current, err := settings.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Job Finder Pro", current.PlatformName)
	require.Equal(t, "off", current.Maintenance)

	saved, err := settings.Update(ctx, SettingsPatch{Maintenance: ptr("ON")})
	require.NoError(t, err)
	require.Equal(t, "on", saved.Maintenance)
	require.Equal(t, "support@jobfinder.com", saved.SupportEmail)

	again, err := settings.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "on", again.Maintenance)
}
