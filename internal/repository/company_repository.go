package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// CompanyRepository manages company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	// List returns companies newest first with JobsCount populated.
	List(ctx context.Context, filter CompanyFilter) ([]domain.Company, error)
	// Delete removes the company together with its jobs.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// CompanyFilter narrows company listings. Query matches name, industry or city.
type CompanyFilter struct {
	Query  string
	Limit  int
	Offset int
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository builds the repository.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (name, industry, city, website, logo_url, logo_key, description, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		company.Name,
		company.Industry,
		company.City,
		company.Website,
		company.LogoURL,
		company.LogoKey,
		company.Description,
		company.Status,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	return mapPgError(err)
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	const query = `
        UPDATE companies
        SET name=$1, industry=$2, city=$3, website=$4, logo_url=$5, logo_key=$6, description=$7, status=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		company.Name,
		company.Industry,
		company.City,
		company.Website,
		company.LogoURL,
		company.LogoKey,
		company.Description,
		company.Status,
		company.ID,
	).Scan(&company.UpdatedAt)
	return mapPgError(err)
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	const query = `
        SELECT c.id, c.name, c.industry, c.city, c.website, c.logo_url, c.logo_key, c.description, c.status,
               (SELECT COUNT(*) FROM jobs j WHERE j.company_id = c.id), c.created_at, c.updated_at
        FROM companies c WHERE c.id=$1`
	var company domain.Company
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.Industry,
		&company.City,
		&company.Website,
		&company.LogoURL,
		&company.LogoKey,
		&company.Description,
		&company.Status,
		&company.JobsCount,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &company, nil
}

func (r *companyRepository) List(ctx context.Context, filter CompanyFilter) ([]domain.Company, error) {
	query := `
        SELECT c.id, c.name, c.industry, c.city, c.website, c.logo_url, c.logo_key, c.description, c.status,
               COUNT(j.id), c.created_at, c.updated_at
        FROM companies c
        LEFT JOIN jobs j ON j.company_id = c.id`
	args := []any{}
	if filter.Query != "" {
		args = append(args, containsPattern(filter.Query))
		query += ` WHERE c.name ILIKE $1 ESCAPE '\' OR c.industry ILIKE $1 ESCAPE '\' OR c.city ILIKE $1 ESCAPE '\'`
	}
	limit, offset := clampPage(filter.Limit, filter.Offset, 200)
	query += fmt.Sprintf(" GROUP BY c.id ORDER BY c.created_at DESC LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Company{}
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Industry,
			&company.City,
			&company.Website,
			&company.LogoURL,
			&company.LogoKey,
			&company.Description,
			&company.Status,
			&company.JobsCount,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, company)
	}
	return result, rows.Err()
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *companyRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
