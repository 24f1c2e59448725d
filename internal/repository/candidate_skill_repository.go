package repository

import (
	"context"

	"github.com/Knocktern/Job-Matching-System/internal/database"
	"github.com/Knocktern/Job-Matching-System/internal/domain/candidate"

	"github.com/google/uuid"
)

type CandidateSkillRepository interface {
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]candidate.Skill, error)
}

type PostgresCandidateSkillRepository struct {
	db database.DB
}

func NewPostgresCandidateSkillRepository(db database.DB) *PostgresCandidateSkillRepository {
	return &PostgresCandidateSkillRepository{db: db}
}

func (r *PostgresCandidateSkillRepository) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]candidate.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cs.id, cs.candidate_id, cs.skill_id, s.name,
		        COALESCE(cs.proficiency, 'Intermediate'), COALESCE(cs.years_experience, 0)
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = $1
		 ORDER BY s.name ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Skill, 0)
	for rows.Next() {
		var cs candidate.Skill
		var proficiency string
		if err := rows.Scan(&cs.ID, &cs.CandidateID, &cs.SkillID, &cs.SkillName, &proficiency, &cs.YearsExperience); err != nil {
			return nil, err
		}
		cs.Proficiency = candidate.ParseProficiency(proficiency)
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
