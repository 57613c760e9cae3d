package handlers

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-admin/internal/api/dto"
	"github.com/spec-kit/jobboard-admin/internal/service"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// CompaniesHandler exposes company endpoints.
type CompaniesHandler struct {
	companies *service.CompanyService
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(companyService *service.CompanyService) *CompaniesHandler {
	return &CompaniesHandler{companies: companyService}
}

// List handles GET /companies.
func (h *CompaniesHandler) List(c *fiber.Ctx) error {
	var q dto.CompanyListQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	companies, err := h.companies.List(c.UserContext(), q.Q)
	if err != nil {
		return err
	}
	return c.JSON(items(dto.NewCompanyList(companies)))
}

// Get handles GET /companies/:id.
func (h *CompaniesHandler) Get(c *fiber.Ctx) error {
	company, err := h.companies.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyResponse(company))
}

// Create handles POST /companies.
func (h *CompaniesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	company, err := h.companies.Create(c.UserContext(), service.CompanyInput{
		Name:        req.Name,
		Industry:    req.Industry,
		City:        req.City,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCompanyResponse(company))
}

// Update handles PUT and PATCH /companies/:id.
func (h *CompaniesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	company, err := h.companies.Update(c.UserContext(), c.Params("id"), service.CompanyPatch{
		Name:        req.Name,
		Industry:    req.Industry,
		City:        req.City,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyResponse(company))
}

// Delete handles DELETE /companies/:id.
func (h *CompaniesHandler) Delete(c *fiber.Ctx) error {
	if err := h.companies.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return deleted(c)
}

// UploadLogo handles POST /companies/:id/logo with a multipart "logo" file.
func (h *CompaniesHandler) UploadLogo(c *fiber.Ctx) error {
	header, err := c.FormFile("logo")
	if err != nil {
		return apperrors.NewValidationError("", []apperrors.FieldError{{Path: "logo", Message: "is required"}})
	}
	file, err := header.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxLogoBytes+1))
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	company, err := h.companies.UploadLogo(c.UserContext(), c.Params("id"), data)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyResponse(company))
}
