package dto

import (
	"time"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// CreateCompanyRequest payload for POST /companies.
type CreateCompanyRequest struct {
	Name        string               `json:"name" validate:"required,notblank,max=200"`
	Industry    string               `json:"industry" validate:"max=100"`
	City        string               `json:"city" validate:"max=100"`
	Website     string               `json:"website" validate:"omitempty,url,max=2048"`
	LogoURL     string               `json:"logoUrl" validate:"max=2048"`
	Description string               `json:"description" validate:"max=5000"`
	Status      domain.CompanyStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateCompanyRequest payload for PUT/PATCH /companies/:id. Absent fields are kept.
type UpdateCompanyRequest struct {
	Name        *string               `json:"name" validate:"omitnil,notblank,max=200"`
	Industry    *string               `json:"industry" validate:"omitnil,max=100"`
	City        *string               `json:"city" validate:"omitnil,max=100"`
	Website     *string               `json:"website" validate:"omitnil,max=2048,eq=|url"`
	LogoURL     *string               `json:"logoUrl" validate:"omitnil,max=2048"`
	Description *string               `json:"description" validate:"omitnil,max=5000"`
	Status      *domain.CompanyStatus `json:"status" validate:"omitnil,oneof=active inactive"`
}

// CompanyListQuery captures GET /companies filters.
type CompanyListQuery struct {
	Q string `query:"q" validate:"max=200"`
}

// CompanyResponse is the public view of a company.
type CompanyResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Industry    string               `json:"industry"`
	City        string               `json:"city"`
	Website     string               `json:"website"`
	LogoURL     string               `json:"logoUrl"`
	Description string               `json:"description"`
	Status      domain.CompanyStatus `json:"status"`
	JobsCount   int                  `json:"jobsCount"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// NewCompanyResponse maps a domain company.
func NewCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Industry:    c.Industry,
		City:        c.City,
		Website:     c.Website,
		LogoURL:     c.LogoURL,
		Description: c.Description,
		Status:      c.Status,
		JobsCount:   c.JobsCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewCompanyList maps a slice of companies.
func NewCompanyList(companies []domain.Company) []CompanyResponse {
	items := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		items = append(items, NewCompanyResponse(&companies[i]))
	}
	return items
}
