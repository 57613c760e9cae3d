package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// SettingsRepository stores the single platform settings record.
type SettingsRepository interface {
	// Get returns ErrNotFound until settings are saved for the first time.
	Get(ctx context.Context) (*domain.PlatformSettings, error)
	Save(ctx context.Context, settings *domain.PlatformSettings) error
}

type settingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository builds the repository.
func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &settingsRepository{pool: pool}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.PlatformSettings, error) {
	const query = `
        SELECT platform_name, support_email, maintenance, updated_at
        FROM platform_settings WHERE id = 1`
	var s domain.PlatformSettings
	err := r.pool.QueryRow(ctx, query).Scan(&s.PlatformName, &s.SupportEmail, &s.Maintenance, &s.UpdatedAt)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *domain.PlatformSettings) error {
	const query = `
        INSERT INTO platform_settings (id, platform_name, support_email, maintenance, updated_at)
        VALUES (1, $1, $2, $3, NOW())
        ON CONFLICT (id) DO UPDATE
        SET platform_name=EXCLUDED.platform_name, support_email=EXCLUDED.support_email,
            maintenance=EXCLUDED.maintenance, updated_at=NOW()
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		settings.PlatformName,
		settings.SupportEmail,
		settings.Maintenance,
	).Scan(&settings.UpdatedAt)
}
