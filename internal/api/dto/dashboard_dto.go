package dto

import (
	"time"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// DashboardStats are the headline counters.
type DashboardStats struct {
	Users      int `json:"users"`
	Companies  int `json:"companies"`
	Jobs       int `json:"jobs"`
	ActiveJobs int `json:"activeJobs"`
}

// DashboardResponse is returned by GET /dashboard.
type DashboardResponse struct {
	Stats      DashboardStats `json:"stats"`
	RecentJobs []JobResponse  `json:"recentJobs"`
}

// NewDashboardResponse maps the dashboard aggregate.
func NewDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Stats: DashboardStats{
			Users:      d.Stats.Users,
			Companies:  d.Stats.Companies,
			Jobs:       d.Stats.Jobs,
			ActiveJobs: d.Stats.ActiveJobs,
		},
		RecentJobs: NewJobList(d.RecentJobs),
	}
}

// UpdateSettingsRequest payload for PUT /settings. Absent fields are kept.
type UpdateSettingsRequest struct {
	PlatformName *string `json:"platformName" validate:"omitnil,notblank,max=100"`
	SupportEmail *string `json:"supportEmail" validate:"omitnil,email,max=254"`
	Maintenance  *string `json:"maintenance" validate:"omitnil,oneof=off on"`
}

// SettingsResponse is the public view of platform settings.
type SettingsResponse struct {
	PlatformName string     `json:"platformName"`
	SupportEmail string     `json:"supportEmail"`
	Maintenance  string     `json:"maintenance"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// NewSettingsResponse maps platform settings; defaults have no update time.
func NewSettingsResponse(s *domain.PlatformSettings) SettingsResponse {
	resp := SettingsResponse{
		PlatformName: s.PlatformName,
		SupportEmail: s.SupportEmail,
		Maintenance:  s.Maintenance,
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
