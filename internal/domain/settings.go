package domain

import "time"

// PlatformSettings is the single platform-wide configuration record.
type PlatformSettings struct {
	PlatformName string
	SupportEmail string
	Maintenance  string
	UpdatedAt    time.Time
}

// DefaultPlatformSettings is returned before an admin saves anything.
func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		PlatformName: "Job Finder Pro",
		SupportEmail: "support@jobfinder.com",
		Maintenance:  "off",
	}
}

// DashboardStats are the headline counters on the admin dashboard.
type DashboardStats struct {
	Users      int
	Companies  int
	Jobs       int
	ActiveJobs int
}

// Dashboard aggregates counters and the most recent postings.
type Dashboard struct {
	Stats      DashboardStats
	RecentJobs []Job
}
