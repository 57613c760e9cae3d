package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/repository"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// SettingsPatch holds optional settings changes.
type SettingsPatch struct {
	PlatformName *string
	SupportEmail *string
	Maintenance  *string
}

// SettingsService reads and updates platform settings.
type SettingsService struct {
	settings repository.SettingsRepository
}

// NewSettingsService builds the service.
func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns stored settings, or the defaults when nothing was saved yet.
func (s *SettingsService) Get(ctx context.Context) (*domain.PlatformSettings, error) {
	current, err := s.settings.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		defaults := domain.DefaultPlatformSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return current, nil
}

// Update merges patch into the current settings and persists the result.
func (s *SettingsService) Update(ctx context.Context, patch SettingsPatch) (*domain.PlatformSettings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	applyString(&current.PlatformName, patch.PlatformName)
	applyString(&current.SupportEmail, patch.SupportEmail)
	if patch.Maintenance != nil {
		current.Maintenance = strings.ToLower(strings.TrimSpace(*patch.Maintenance))
	}
	if err := s.settings.Save(ctx, current); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return current, nil
}
