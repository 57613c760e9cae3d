package domain

import "time"

// CompanyStatus marks whether a company is shown as hiring.
type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
)

// Company is an employer that owns job postings.
type Company struct {
	ID          string
	Name        string
	Industry    string
	City        string
	Website     string
	LogoURL     string
	LogoKey     string
	Description string
	Status      CompanyStatus
	JobsCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
