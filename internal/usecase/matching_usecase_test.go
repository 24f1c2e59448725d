package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Knocktern/Job-Matching-System/internal/domain/candidate"
	"github.com/Knocktern/Job-Matching-System/internal/domain/job"
	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"
)

func TestMatching_CalculateMatch(t *testing.T) {
	candID := uuid.New()
	skillID := uuid.New()
	loc := "Berlin"
	expectation := decimal.NewFromInt(70000)
	salaryMin := decimal.NewFromInt(60000)
	salaryMax := decimal.NewFromInt(90000)

	posting := activePosting("Go Engineer", 3)
	posting.Location = &loc
	posting.SalaryMin = &salaryMin
	posting.SalaryMax = &salaryMax

	u := NewMatchingUsecase(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{
			candID: {ID: candID, ExperienceYears: 5, Location: &loc, SalaryExpectation: &expectation},
		}},
		mockCandidateSkillRepo{byCandidate: map[uuid.UUID][]candidate.Skill{
			candID: {{SkillID: skillID, SkillName: "Go"}},
		}},
		mockJobRepo{jobs: map[uuid.UUID]job.Posting{posting.ID: posting}},
		mockJobSkillRepo{byJob: map[uuid.UUID][]matching.RequiredSkill{
			posting.ID: {{SkillID: skillID, SkillName: "Go", Importance: matching.ImportanceRequired}},
		}},
	)

	res, err := u.CalculateMatch(context.Background(), candID, posting.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Found {
		t.Fatalf("expected a resolved pair")
	}
	if res.CandidateID != candID || res.JobID != posting.ID {
		t.Fatalf("result ids do not echo the input")
	}
	want := matching.Breakdown{Experience: 30, Skills: 50, Location: 10, Salary: 10, Total: 100}
	if res.Breakdown != want {
		t.Fatalf("unexpected breakdown %+v", res.Breakdown)
	}
}

func TestMatching_UnresolvedIDsAreNotFaults(t *testing.T) {
	candID := uuid.New()
	posting := activePosting("Go Engineer", 0)

	u := NewMatchingUsecase(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candID: {ID: candID}}},
		mockCandidateSkillRepo{},
		mockJobRepo{jobs: map[uuid.UUID]job.Posting{posting.ID: posting}},
		mockJobSkillRepo{},
	)

	res, err := u.CalculateMatch(context.Background(), uuid.New(), posting.ID)
	if err != nil {
		t.Fatalf("unknown candidate must not error, got %v", err)
	}
	if res.Found {
		t.Fatalf("unknown candidate must report Found=false")
	}
	if res.Breakdown != (matching.Breakdown{}) {
		t.Fatalf("unresolved pair must carry a zero breakdown")
	}

	res, err = u.CalculateMatch(context.Background(), candID, uuid.New())
	if err != nil {
		t.Fatalf("unknown job must not error, got %v", err)
	}
	if res.Found {
		t.Fatalf("unknown job must report Found=false")
	}
}

func TestMatching_NilIDs(t *testing.T) {
	u := NewMatchingUsecase(mockCandidateRepo{}, mockCandidateSkillRepo{}, mockJobRepo{}, mockJobSkillRepo{})

	if _, err := u.CalculateMatch(context.Background(), uuid.Nil, uuid.New()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil candidate id, got %v", err)
	}
	if _, err := u.CalculateMatch(context.Background(), uuid.New(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil job id, got %v", err)
	}
}

func TestMatching_RepoFailureIsInternal(t *testing.T) {
	u := NewMatchingUsecase(
		mockCandidateRepo{err: errors.New("connection reset")},
		mockCandidateSkillRepo{},
		mockJobRepo{},
		mockJobSkillRepo{},
	)
	if _, err := u.CalculateMatch(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
