package job

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Posting is one job opening. SalaryMin <= SalaryMax holds whenever both
// are present; either may be nil. Postings are immutable to the matching
// engine for the duration of a scoring pass.
type Posting struct {
	ID                 uuid.UUID
	CompanyID          uuid.UUID
	Title              string
	Location           *string
	ExperienceRequired int
	SalaryMin          *decimal.Decimal
	SalaryMax          *decimal.Decimal
	IsActive           bool
	CreatedAt          time.Time
}
