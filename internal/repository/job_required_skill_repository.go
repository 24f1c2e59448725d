package repository

import (
	"context"

	"github.com/Knocktern/Job-Matching-System/internal/database"
	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"

	"github.com/google/uuid"
)

type JobRequiredSkillRepository interface {
	// FindByJobID returns the posting's required skills in stable
	// (importance, name) order.
	FindByJobID(ctx context.Context, jobID uuid.UUID) ([]matching.RequiredSkill, error)
}

type PostgresJobRequiredSkillRepository struct {
	db database.DB
}

func NewPostgresJobRequiredSkillRepository(db database.DB) *PostgresJobRequiredSkillRepository {
	return &PostgresJobRequiredSkillRepository{db: db}
}

func (r *PostgresJobRequiredSkillRepository) FindByJobID(ctx context.Context, jobID uuid.UUID) ([]matching.RequiredSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT jrs.skill_id, s.name,
		        COALESCE(jrs.importance, 'Required'), COALESCE(jrs.min_years_experience, 0)
		 FROM job_required_skills jrs
		 JOIN skills s ON s.id = jrs.skill_id
		 WHERE jrs.job_id = $1
		 ORDER BY CASE jrs.importance
		          WHEN 'Required' THEN 0
		          WHEN 'Preferred' THEN 1
		          ELSE 2 END,
		          s.name ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.RequiredSkill, 0)
	for rows.Next() {
		var rs matching.RequiredSkill
		var importance string
		if err := rows.Scan(&rs.SkillID, &rs.SkillName, &importance, &rs.MinYears); err != nil {
			return nil, err
		}
		// Unknown labels degrade to the lowest weight instead of failing
		// the whole fetch.
		rs.Importance, _ = matching.ParseImportance(importance)
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
