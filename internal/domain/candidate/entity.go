package candidate

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Proficiency is the self-reported level a candidate holds in a skill.
type Proficiency int

const (
	ProficiencyBeginner Proficiency = iota
	ProficiencyIntermediate
	ProficiencyAdvanced
	ProficiencyExpert
)

var proficiencyLabels = map[Proficiency]string{
	ProficiencyBeginner:     "Beginner",
	ProficiencyIntermediate: "Intermediate",
	ProficiencyAdvanced:     "Advanced",
	ProficiencyExpert:       "Expert",
}

func (p Proficiency) String() string {
	if s, ok := proficiencyLabels[p]; ok {
		return s
	}
	return "Intermediate"
}

// ParseProficiency maps a stored label onto the enum. Unknown labels fall
// back to Intermediate, the storage default.
func ParseProficiency(s string) Proficiency {
	switch s {
	case "Beginner":
		return ProficiencyBeginner
	case "Intermediate":
		return ProficiencyIntermediate
	case "Advanced":
		return ProficiencyAdvanced
	case "Expert":
		return ProficiencyExpert
	}
	return ProficiencyIntermediate
}

// Profile is a candidate's structured attributes. Location and
// SalaryExpectation are nil until the candidate fills them in.
type Profile struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ExperienceYears   int
	CurrentPosition   *string
	Location          *string
	SalaryExpectation *decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Skill is one skill association owned by a profile.
type Skill struct {
	ID              uuid.UUID
	CandidateID     uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	Proficiency     Proficiency
	YearsExperience int
}
