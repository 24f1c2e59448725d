package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecommendationItemResponse struct {
	JobID      uuid.UUID        `json:"job_id"`
	CompanyID  uuid.UUID        `json:"company_id"`
	Title      string           `json:"title"`
	Location   *string          `json:"location"`
	SalaryMin  *decimal.Decimal `json:"salary_min"`
	SalaryMax  *decimal.Decimal `json:"salary_max"`
	MatchScore int              `json:"match_score"`

	Breakdown ScoreBreakdownResponse `json:"breakdown"`
}
