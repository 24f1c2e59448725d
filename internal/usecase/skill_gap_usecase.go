package usecase

import (
	"context"
	"errors"

	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"
	"github.com/Knocktern/Job-Matching-System/internal/repository"

	"github.com/google/uuid"
)

// skillGapDefaultPostings caps how many top recommendations the analyzer
// falls back to when the caller supplies no posting ids.
const skillGapDefaultPostings = 5

// SkillGapResult is the matched/missing partition of one posting's
// required skills for a candidate. Found is false when the posting id did
// not resolve; the partitions are then empty. Score is present only when
// the caller asked for it.
type SkillGapResult struct {
	JobID    uuid.UUID                `json:"job_id"`
	JobTitle string                   `json:"job_title"`
	Found    bool                     `json:"found"`
	Matched  []matching.RequiredSkill `json:"matched"`
	Missing  []matching.RequiredSkill `json:"missing"`
	Score    *matching.Breakdown      `json:"score,omitempty"`
}

type SkillGapUsecase interface {
	// AnalyzeGaps produces one result per input posting, order preserved.
	// With no posting ids it analyzes the candidate's top recommendations.
	AnalyzeGaps(ctx context.Context, candidateID uuid.UUID, jobIDs []uuid.UUID, includeScore bool) ([]SkillGapResult, error)
}

type SkillGapAnalyzer struct {
	candidates      repository.CandidateRepository
	candidateSkills repository.CandidateSkillRepository
	jobs            repository.JobRepository
	jobSkills       repository.JobRequiredSkillRepository

	recommendations RecommendationUsecase
}

func NewSkillGapAnalyzer(
	candidates repository.CandidateRepository,
	candidateSkills repository.CandidateSkillRepository,
	jobs repository.JobRepository,
	jobSkills repository.JobRequiredSkillRepository,
	recommendations RecommendationUsecase,
) *SkillGapAnalyzer {
	return &SkillGapAnalyzer{
		candidates:      candidates,
		candidateSkills: candidateSkills,
		jobs:            jobs,
		jobSkills:       jobSkills,
		recommendations: recommendations,
	}
}

func (a *SkillGapAnalyzer) AnalyzeGaps(ctx context.Context, candidateID uuid.UUID, jobIDs []uuid.UUID, includeScore bool) ([]SkillGapResult, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	cand, err := a.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return []SkillGapResult{}, nil
		}
		return nil, ErrInternal
	}

	owned, err := a.candidateSkills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}

	if len(jobIDs) == 0 {
		jobIDs, err = a.topRecommendedJobIDs(ctx, candidateID)
		if err != nil {
			return nil, err
		}
	}

	candIn := candidateInput(cand)
	ownedIn := ownedSkills(owned)

	out := make([]SkillGapResult, 0, len(jobIDs))
	for _, jobID := range jobIDs {
		res := SkillGapResult{
			JobID:   jobID,
			Matched: []matching.RequiredSkill{},
			Missing: []matching.RequiredSkill{},
		}

		posting, err := a.jobs.GetByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				out = append(out, res)
				continue
			}
			return nil, ErrInternal
		}

		required, err := a.jobSkills.FindByJobID(ctx, jobID)
		if err != nil {
			return nil, ErrInternal
		}

		gap := matching.AnalyzeGap(required, ownedIn)
		res.Found = true
		res.JobTitle = posting.Title
		res.Matched = gap.Matched
		res.Missing = gap.Missing
		if includeScore {
			b := matching.Score(candIn, jobInput(posting), required, ownedIn)
			res.Score = &b
		}
		out = append(out, res)
	}

	return out, nil
}

func (a *SkillGapAnalyzer) topRecommendedJobIDs(ctx context.Context, candidateID uuid.UUID) ([]uuid.UUID, error) {
	if a.recommendations == nil {
		return nil, nil
	}
	recs, err := a.recommendations.GetRecommendations(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if len(recs) > skillGapDefaultPostings {
		recs = recs[:skillGapDefaultPostings]
	}
	ids := make([]uuid.UUID, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.Job.ID)
	}
	return ids, nil
}
