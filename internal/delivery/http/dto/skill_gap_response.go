package dto

import (
	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"

	"github.com/google/uuid"
)

type SkillGapSkillItem struct {
	SkillID    uuid.UUID `json:"skill_id"`
	SkillName  string    `json:"skill_name"`
	Importance string    `json:"importance"`
	MinYears   int       `json:"min_years"`
}

func NewSkillGapSkillItems(skills []matching.RequiredSkill) []SkillGapSkillItem {
	out := make([]SkillGapSkillItem, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillGapSkillItem{
			SkillID:    s.SkillID,
			SkillName:  s.SkillName,
			Importance: s.Importance.String(),
			MinYears:   s.MinYears,
		})
	}
	return out
}

type SkillGapItemResponse struct {
	JobID    uuid.UUID               `json:"job_id"`
	JobTitle string                  `json:"job_title"`
	Found    bool                    `json:"found"`
	Matched  []SkillGapSkillItem     `json:"matched_skills"`
	Missing  []SkillGapSkillItem     `json:"missing_skills"`
	Score    *ScoreBreakdownResponse `json:"score,omitempty"`
}
