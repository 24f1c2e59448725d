package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Knocktern/Job-Matching-System/internal/database"
	"github.com/Knocktern/Job-Matching-System/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	// GetByID returns ErrCandidateNotFound when the id does not resolve.
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
	// ListActive returns profiles belonging to active user accounts.
	ListActive(ctx context.Context) ([]candidate.Profile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `cp.id, cp.user_id, COALESCE(cp.experience_years, 0),
	 cp.current_position, cp.location, cp.salary_expectation, cp.created_at, cp.updated_at`

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidate_profiles cp
		 WHERE cp.id = $1`,
		id,
	)

	p, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, err
	}
	return p, nil
}

func (r *PostgresCandidateRepository) ListActive(ctx context.Context) ([]candidate.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidate_profiles cp
		 JOIN users u ON u.id = cp.user_id
		 WHERE u.is_active = TRUE
		 ORDER BY cp.created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Profile, 0)
	for rows.Next() {
		p, err := scanCandidate(rows)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(s scanner) (candidate.Profile, error) {
	var p candidate.Profile
	var salary decimal.NullDecimal
	if err := s.Scan(&p.ID, &p.UserID, &p.ExperienceYears, &p.CurrentPosition,
		&p.Location, &salary, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return candidate.Profile{}, err
	}
	if salary.Valid {
		p.SalaryExpectation = &salary.Decimal
	}
	return p, nil
}
