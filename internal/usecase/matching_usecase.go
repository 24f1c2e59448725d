package usecase

import (
	"context"
	"errors"

	"github.com/Knocktern/Job-Matching-System/internal/domain/candidate"
	"github.com/Knocktern/Job-Matching-System/internal/domain/job"
	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"
	"github.com/Knocktern/Job-Matching-System/internal/repository"

	"github.com/google/uuid"
)

// MatchResult is the standalone score of one (candidate, job) pair.
// Found is false when either id did not resolve; the breakdown is then
// all zeroes, which is a result and not a fault.
type MatchResult struct {
	CandidateID uuid.UUID          `json:"candidate_id"`
	JobID       uuid.UUID          `json:"job_id"`
	Found       bool               `json:"found"`
	Breakdown   matching.Breakdown `json:"breakdown"`
}

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, candidateID, jobID uuid.UUID) (MatchResult, error)
}

type Matching struct {
	candidates      repository.CandidateRepository
	candidateSkills repository.CandidateSkillRepository
	jobs            repository.JobRepository
	jobSkills       repository.JobRequiredSkillRepository
}

func NewMatchingUsecase(
	candidates repository.CandidateRepository,
	candidateSkills repository.CandidateSkillRepository,
	jobs repository.JobRepository,
	jobSkills repository.JobRequiredSkillRepository,
) *Matching {
	return &Matching{candidates: candidates, candidateSkills: candidateSkills, jobs: jobs, jobSkills: jobSkills}
}

func (u *Matching) CalculateMatch(ctx context.Context, candidateID, jobID uuid.UUID) (MatchResult, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return MatchResult{}, ErrInvalidInput
	}

	out := MatchResult{CandidateID: candidateID, JobID: jobID}

	cand, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return out, nil
		}
		return MatchResult{}, ErrInternal
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return out, nil
		}
		return MatchResult{}, ErrInternal
	}

	required, err := u.jobSkills.FindByJobID(ctx, jobID)
	if err != nil {
		return MatchResult{}, ErrInternal
	}
	owned, err := u.candidateSkills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return MatchResult{}, ErrInternal
	}

	out.Found = true
	out.Breakdown = matching.Score(candidateInput(cand), jobInput(posting), required, ownedSkills(owned))
	return out, nil
}

func candidateInput(p candidate.Profile) matching.Candidate {
	return matching.Candidate{
		ExperienceYears:   p.ExperienceYears,
		Location:          p.Location,
		SalaryExpectation: p.SalaryExpectation,
	}
}

func jobInput(p job.Posting) matching.Job {
	return matching.Job{
		ExperienceRequired: p.ExperienceRequired,
		Location:           p.Location,
		SalaryMin:          p.SalaryMin,
		SalaryMax:          p.SalaryMax,
	}
}

func ownedSkills(skills []candidate.Skill) []matching.OwnedSkill {
	out := make([]matching.OwnedSkill, 0, len(skills))
	for _, s := range skills {
		out = append(out, matching.OwnedSkill{
			SkillID:         s.SkillID,
			SkillName:       s.SkillName,
			YearsExperience: s.YearsExperience,
		})
	}
	return out
}
