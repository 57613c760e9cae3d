package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// JobRepository manages job postings.
type JobRepository interface {
	// Create fails with ErrNotFound when the company does not exist.
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns jobs newest first with CompanyName populated.
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter JobFilter) (int, error)
}

// JobFilter narrows job listings. Query matches title or location.
type JobFilter struct {
	Query     string
	Status    *domain.JobStatus
	CompanyID *string
	Limit     int
	Offset    int
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository builds the repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobSelect = `
        SELECT j.id, j.title, j.company_id, c.name, j.location, j.salary, j.job_type, j.description, j.status,
               j.created_at, j.updated_at
        FROM jobs j
        JOIN companies c ON c.id = j.company_id`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.CompanyID,
		&job.CompanyName,
		&job.Location,
		&job.Salary,
		&job.Type,
		&job.Description,
		&job.Status,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &job, nil
}

func (f JobFilter) where() (string, []any) {
	args := []any{}
	clauses := []string{}
	if f.Query != "" {
		args = append(args, containsPattern(f.Query))
		clauses = append(clauses, fmt.Sprintf(`(j.title ILIKE $%d ESCAPE '\' OR j.location ILIKE $%d ESCAPE '\')`, len(args), len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		clauses = append(clauses, fmt.Sprintf("j.status=$%d", len(args)))
	}
	if f.CompanyID != nil {
		args = append(args, *f.CompanyID)
		clauses = append(clauses, fmt.Sprintf("j.company_id=$%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, company_id, location, salary, job_type, description, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		job.Title,
		job.CompanyID,
		job.Location,
		job.Salary,
		job.Type,
		job.Description,
		job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	return mapPgError(err)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs
        SET title=$1, company_id=$2, location=$3, salary=$4, job_type=$5, description=$6, status=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		job.Title,
		job.CompanyID,
		job.Location,
		job.Salary,
		job.Type,
		job.Description,
		job.Status,
		job.ID,
	).Scan(&job.UpdatedAt)
	return mapPgError(err)
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return scanJob(r.pool.QueryRow(ctx, jobSelect+` WHERE j.id=$1`, id))
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	where, args := filter.where()
	limit, offset := clampPage(filter.Limit, filter.Offset, 200)
	query := jobSelect + where + fmt.Sprintf(" ORDER BY j.created_at DESC LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	result := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err)
	}
	return result, nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *jobRepository) Count(ctx context.Context, filter JobFilter) (int, error) {
	where, args := filter.where()
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j`+where, args...).Scan(&n); err != nil {
		return 0, mapPgError(err)
	}
	return n, nil
}
