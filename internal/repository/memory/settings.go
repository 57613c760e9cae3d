package memory

import (
	"context"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/repository"
)

type settingsRepository struct {
	s *Store
}

func (r *settingsRepository) Get(context.Context) (*domain.PlatformSettings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.settings == nil {
		return nil, repository.ErrNotFound
	}
	copied := *r.s.settings
	return &copied, nil
}

func (r *settingsRepository) Save(_ context.Context, settings *domain.PlatformSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	last := settings.UpdatedAt
	if r.s.settings != nil {
		last = r.s.settings.UpdatedAt
	}
	settings.UpdatedAt = r.s.stamp(last)
	copied := *settings
	r.s.settings = &copied
	return nil
}
