package client

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"createdAt"`
}

type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	City        string    `json:"city"`
	Website     string    `json:"website"`
	LogoURL     string    `json:"logoUrl"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	JobsCount   int       `json:"jobsCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CompanyInput is the create payload; empty fields are omitted.
type CompanyInput struct {
	Name        string `json:"name"`
	Industry    string `json:"industry,omitempty"`
	City        string `json:"city,omitempty"`
	Website     string `json:"website,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type Job struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CompanyID string `json:"companyId"`
	Company   struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"company"`
	Location  string    `json:"location"`
	Salary    string    `json:"salary"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobQuery filters ListJobs; zero fields are not sent.
type JobQuery struct {
	Query     string
	Status    string
	CompanyID string
}

type Dashboard struct {
	Stats struct {
		Users      int `json:"users"`
		Companies  int `json:"companies"`
		Jobs       int `json:"jobs"`
		ActiveJobs int `json:"activeJobs"`
	} `json:"stats"`
	RecentJobs []Job `json:"recentJobs"`
}

// FieldError mirrors one entry of a validation error response.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type authResponse struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}
