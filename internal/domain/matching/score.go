package matching

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Candidate is the profile slice the calculator needs. Optional fields are
// nil when the candidate never filled them in.
type Candidate struct {
	ExperienceYears   int
	Location          *string
	SalaryExpectation *decimal.Decimal
}

// Job is the posting slice the calculator needs.
type Job struct {
	ExperienceRequired int
	Location           *string
	SalaryMin          *decimal.Decimal
	SalaryMax          *decimal.Decimal
}

// RequiredSkill is one skill entry attached to a posting.
type RequiredSkill struct {
	SkillID    uuid.UUID
	SkillName  string
	Importance Importance
	MinYears   int
}

// OwnedSkill is one skill a candidate holds.
type OwnedSkill struct {
	SkillID         uuid.UUID
	SkillName       string
	YearsExperience int
}

// Breakdown is the compatibility score of one (candidate, job) pair,
// split by component. Total is always in [0, 100].
type Breakdown struct {
	Experience int
	Skills     int
	Location   int
	Salary     int
	Total      int
}

const (
	maxScore            = 100
	noRequiredSkillsPts = 25
)

// salaryTolerance is the band above salary_max that still earns partial
// credit. Kept as an exact decimal so boundary comparisons never drift.
var salaryTolerance = decimal.New(12, -1) // 1.2

// Score computes the compatibility of a candidate against a job posting.
// It is a pure function of its inputs: no I/O, no shared state, safe to
// call from any number of goroutines. Missing optional fields degrade a
// component to its zero contribution instead of failing.
func Score(c Candidate, j Job, required []RequiredSkill, owned []OwnedSkill) Breakdown {
	b := Breakdown{
		Experience: experienceScore(c.ExperienceYears, j.ExperienceRequired),
		Skills:     skillsScore(required, owned),
		Location:   locationScore(c.Location, j.Location),
		Salary:     salaryScore(c.SalaryExpectation, j.SalaryMin, j.SalaryMax),
	}

	total := b.Experience + b.Skills + b.Location + b.Salary
	if total > maxScore {
		total = maxScore
	}
	b.Total = total
	return b
}

// experienceScore awards up to 30 points in tiers. A posting that requires
// zero years always lands in the top tier.
func experienceScore(have, req int) int {
	switch {
	case have >= req:
		return 30
	case float64(have) >= 0.7*float64(req):
		return 20
	case float64(have) >= 0.5*float64(req):
		return 10
	}
	return 0
}

// skillsScore awards up to 50 points by importance-weighted skill-id
// membership. Proficiency and years are not part of this sum. A posting
// with no required skills earns a flat 25: no constraint, moderate
// confidence.
func skillsScore(required []RequiredSkill, owned []OwnedSkill) int {
	if len(required) == 0 {
		return noRequiredSkillsPts
	}

	ownedIDs := make(map[uuid.UUID]struct{}, len(owned))
	for _, s := range owned {
		if s.SkillID == uuid.Nil {
			continue
		}
		ownedIDs[s.SkillID] = struct{}{}
	}

	totalWeight := 0
	matchedWeight := 0
	for _, r := range required {
		w := r.Importance.Weight()
		totalWeight += w
		if _, ok := ownedIDs[r.SkillID]; ok {
			matchedWeight += w
		}
	}
	if totalWeight == 0 {
		return noRequiredSkillsPts
	}

	// Integer division floors, matching the documented rounding.
	return matchedWeight * 50 / totalWeight
}

// locationScore awards 10 for a case-insensitive substring match in either
// direction, 5 when both sides state a location that does not overlap, and
// 0 when either side is silent.
func locationScore(candidateLoc, jobLoc *string) int {
	if candidateLoc == nil || jobLoc == nil {
		return 0
	}
	cl := strings.ToLower(strings.TrimSpace(*candidateLoc))
	jl := strings.ToLower(strings.TrimSpace(*jobLoc))
	if cl == "" || jl == "" {
		return 0
	}
	if strings.Contains(cl, jl) || strings.Contains(jl, cl) {
		return 10
	}
	return 5
}

// salaryScore awards 10 when the expectation sits inside the posted range
// and 5 when it is within 1.2x of salary_max. All comparisons are exact
// decimal arithmetic.
func salaryScore(expectation, salaryMin, salaryMax *decimal.Decimal) int {
	if expectation == nil || salaryMin == nil || salaryMax == nil {
		return 0
	}
	if expectation.GreaterThanOrEqual(*salaryMin) && expectation.LessThanOrEqual(*salaryMax) {
		return 10
	}
	if expectation.LessThanOrEqual(salaryMax.Mul(salaryTolerance)) {
		return 5
	}
	return 0
}
