package dto

import (
	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"

	"github.com/google/uuid"
)

type ScoreBreakdownResponse struct {
	ExperienceScore int `json:"experience_score"`
	SkillsScore     int `json:"skills_score"`
	LocationScore   int `json:"location_score"`
	SalaryScore     int `json:"salary_score"`
	TotalScore      int `json:"total_score"`
}

func NewScoreBreakdownResponse(b matching.Breakdown) ScoreBreakdownResponse {
	return ScoreBreakdownResponse{
		ExperienceScore: b.Experience,
		SkillsScore:     b.Skills,
		LocationScore:   b.Location,
		SalaryScore:     b.Salary,
		TotalScore:      b.Total,
	}
}

type MatchResponse struct {
	CandidateID uuid.UUID              `json:"candidate_id"`
	JobID       uuid.UUID              `json:"job_id"`
	Found       bool                   `json:"found"`
	Breakdown   ScoreBreakdownResponse `json:"breakdown"`
}
