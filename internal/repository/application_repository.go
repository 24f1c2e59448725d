package repository

import (
	"context"
	"errors"

	"github.com/Knocktern/Job-Matching-System/internal/database"

	"github.com/google/uuid"
)

// ErrDuplicateApplication marks a second application to the same posting.
var ErrDuplicateApplication = errors.New("application already exists")

type ApplicationRepository interface {
	// AppliedJobIDs returns the ids of postings the candidate has already
	// applied to, for exclusion from recommendations.
	AppliedJobIDs(ctx context.Context, candidateID uuid.UUID) ([]uuid.UUID, error)

	Create(ctx context.Context, candidateID, jobID uuid.UUID) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) AppliedJobIDs(ctx context.Context, candidateID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ja.job_id
		 FROM job_applications ja
		 WHERE ja.candidate_id = $1`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, candidateID, jobID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (id, candidate_id, job_id, status)
		 VALUES ($1, $2, $3, 'submitted')
		 ON CONFLICT (candidate_id, job_id) DO NOTHING`,
		uuid.New(), candidateID, jobID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDuplicateApplication
	}
	return nil
}
