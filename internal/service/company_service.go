package service

import (
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/repository"
	"github.com/spec-kit/jobboard-admin/internal/storage"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// MaxLogoBytes caps company logo uploads.
const MaxLogoBytes = 2 << 20

var logoExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// CompanyInput holds the fields of a new company.
type CompanyInput struct {
	Name        string
	Industry    string
	City        string
	Website     string
	LogoURL     string
	Description string
	Status      domain.CompanyStatus
}

// CompanyPatch holds optional company changes; nil fields are left untouched.
type CompanyPatch struct {
	Name        *string
	Industry    *string
	City        *string
	Website     *string
	LogoURL     *string
	Description *string
	Status      *domain.CompanyStatus
}

// CompanyService manages companies and their logos.
type CompanyService struct {
	companies repository.CompanyRepository
	storage   storage.Storage
	logger    *zap.Logger
}

// NewCompanyService builds the service. store may be nil, which disables logo uploads.
func NewCompanyService(companies repository.CompanyRepository, store storage.Storage, logger *zap.Logger) *CompanyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanyService{companies: companies, storage: store, logger: logger}
}

func (s *CompanyService) List(ctx context.Context, query string) ([]domain.Company, error) {
	companies, err := s.companies.List(ctx, repository.CompanyFilter{Query: strings.TrimSpace(query)})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Company")
	}
	return company, nil
}

func (s *CompanyService) Create(ctx context.Context, in CompanyInput) (*domain.Company, error) {
	status := in.Status
	if status == "" {
		status = domain.CompanyStatusActive
	}
	company := &domain.Company{
		Name:        strings.TrimSpace(in.Name),
		Industry:    strings.TrimSpace(in.Industry),
		City:        strings.TrimSpace(in.City),
		Website:     strings.TrimSpace(in.Website),
		LogoURL:     strings.TrimSpace(in.LogoURL),
		Description: in.Description,
		Status:      status,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, mapRepoError(err, "Company")
	}
	return company, nil
}

func (s *CompanyService) Update(ctx context.Context, id string, patch CompanyPatch) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Company")
	}

	staleKey := ""
	applyString(&company.Name, patch.Name)
	applyString(&company.Industry, patch.Industry)
	applyString(&company.City, patch.City)
	applyString(&company.Website, patch.Website)
	if patch.LogoURL != nil && strings.TrimSpace(*patch.LogoURL) != company.LogoURL {
		staleKey = company.LogoKey
		company.LogoURL = strings.TrimSpace(*patch.LogoURL)
		company.LogoKey = ""
	}
	if patch.Description != nil {
		company.Description = *patch.Description
	}
	if patch.Status != nil {
		company.Status = *patch.Status
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, mapRepoError(err, "Company")
	}
	s.removeObject(ctx, staleKey)
	return company, nil
}

// Delete removes the company and, through the store, all of its jobs.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "Company")
	}
	if err := s.companies.Delete(ctx, id); err != nil {
		return mapRepoError(err, "Company")
	}
	s.removeObject(ctx, company.LogoKey)
	return nil
}

// UploadLogo stores an image and points the company at it, replacing any previous upload.
func (s *CompanyService) UploadLogo(ctx context.Context, id string, data []byte) (*domain.Company, error) {
	if s.storage == nil {
		return nil, apperrors.NewInternalError(errNoStorage)
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("", []apperrors.FieldError{{Path: "logo", Message: "is required"}})
	}
	if len(data) > MaxLogoBytes {
		return nil, apperrors.NewValidationError("", []apperrors.FieldError{{Path: "logo", Message: "must be at most 2 MiB"}})
	}
	contentType := mimetype.Detect(data).String()
	ext, ok := logoExtensions[contentType]
	if !ok {
		return nil, apperrors.NewValidationError("", []apperrors.FieldError{{Path: "logo", Message: "must be a png, jpeg, webp or gif image"}})
	}

	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Company")
	}

	key, err := s.storage.Save(ctx, data, storage.SaveOptions{Category: "logos", Extension: ext, ContentType: contentType})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	staleKey := company.LogoKey
	company.LogoKey = key
	company.LogoURL = s.storage.URL(key)
	if err := s.companies.Update(ctx, company); err != nil {
		s.removeObject(ctx, key)
		return nil, mapRepoError(err, "Company")
	}
	s.removeObject(ctx, staleKey)
	return company, nil
}

func (s *CompanyService) removeObject(ctx context.Context, key string) {
	if key == "" || s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete stored logo", zap.String("key", key), zap.Error(err))
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
