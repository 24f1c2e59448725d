package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Knocktern/Job-Matching-System/internal/database"
	"github.com/Knocktern/Job-Matching-System/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	// GetByID returns ErrJobNotFound when the id does not resolve.
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	// ListActiveExcluding returns active postings whose ids are not in
	// excluded. Fetch order is stable (created_at, id).
	ListActiveExcluding(ctx context.Context, excluded []uuid.UUID) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `jp.id, jp.company_id, jp.title, jp.location,
	 COALESCE(jp.experience_required, 0), jp.salary_min, jp.salary_max, jp.is_active, jp.created_at`

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+`
		 FROM job_postings jp
		 WHERE jp.id = $1`,
		id,
	)

	p, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) ListActiveExcluding(ctx context.Context, excluded []uuid.UUID) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM job_postings jp
		 WHERE jp.is_active = TRUE
		   AND NOT (jp.id = ANY($1))
		 ORDER BY jp.created_at ASC, jp.id ASC`,
		excludedParam(excluded),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// excludedParam keeps the ANY($1) parameter non-nil so the query planner
// sees a typed empty array instead of NULL.
func excludedParam(excluded []uuid.UUID) []uuid.UUID {
	if excluded == nil {
		return []uuid.UUID{}
	}
	return excluded
}

func scanJob(s scanner) (job.Posting, error) {
	var p job.Posting
	var salaryMin, salaryMax decimal.NullDecimal
	if err := s.Scan(&p.ID, &p.CompanyID, &p.Title, &p.Location,
		&p.ExperienceRequired, &salaryMin, &salaryMax, &p.IsActive, &p.CreatedAt); err != nil {
		return job.Posting{}, err
	}
	if salaryMin.Valid {
		p.SalaryMin = &salaryMin.Decimal
	}
	if salaryMax.Valid {
		p.SalaryMax = &salaryMax.Decimal
	}
	return p, nil
}
