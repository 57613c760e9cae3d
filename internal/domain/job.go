package domain

import "time"

// JobStatus enumerates posting lifecycle states.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

// Job is a posting that belongs to a company.
type Job struct {
	ID          string
	Title       string
	CompanyID   string
	CompanyName string
	Location    string
	Salary      string
	Type        string
	Description string
	Status      JobStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
