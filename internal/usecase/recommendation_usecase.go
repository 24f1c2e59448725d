package usecase

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/Knocktern/Job-Matching-System/internal/domain/job"
	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"
	"github.com/Knocktern/Job-Matching-System/internal/pool"
	"github.com/Knocktern/Job-Matching-System/internal/repository"

	"github.com/google/uuid"
)

const (
	// recommendationMinScore is a strict cutoff: only scores above it
	// are worth showing.
	recommendationMinScore = 30
	recommendationLimit    = 10

	recommendationCacheTTL = 5 * time.Minute
)

// Recommendation pairs a posting with its computed compatibility score.
type Recommendation struct {
	Job   job.Posting        `json:"job"`
	Score matching.Breakdown `json:"score"`
}

type RecommendationUsecase interface {
	// GetRecommendations returns the candidate's top matches, best first.
	// An unknown candidate id yields an empty slice, not an error.
	GetRecommendations(ctx context.Context, candidateID uuid.UUID) ([]Recommendation, error)
}

type RecommendationEngine struct {
	candidates      repository.CandidateRepository
	candidateSkills repository.CandidateSkillRepository
	jobs            repository.JobRepository
	jobSkills       repository.JobRequiredSkillRepository
	applications    repository.ApplicationRepository

	cache   RecommendationCache
	workers int
	logger  *log.Logger
}

func NewRecommendationEngine(
	candidates repository.CandidateRepository,
	candidateSkills repository.CandidateSkillRepository,
	jobs repository.JobRepository,
	jobSkills repository.JobRequiredSkillRepository,
	applications repository.ApplicationRepository,
	cache RecommendationCache,
	workers int,
	logger *log.Logger,
) *RecommendationEngine {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &RecommendationEngine{
		candidates:      candidates,
		candidateSkills: candidateSkills,
		jobs:            jobs,
		jobSkills:       jobSkills,
		applications:    applications,
		cache:           cache,
		workers:         workers,
		logger:          logger,
	}
}

func (e *RecommendationEngine) GetRecommendations(ctx context.Context, candidateID uuid.UUID) ([]Recommendation, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	cacheKey := "recommendations:" + candidateID.String()
	if e.cache != nil {
		var cached []Recommendation
		if ok, err := e.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	cand, err := e.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return []Recommendation{}, nil
		}
		return nil, ErrInternal
	}

	owned, err := e.candidateSkills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}

	applied, err := e.applications.AppliedJobIDs(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}

	postings, err := e.jobs.ListActiveExcluding(ctx, applied)
	if err != nil {
		return nil, ErrInternal
	}
	if len(postings) == 0 {
		return []Recommendation{}, nil
	}

	candIn := candidateInput(cand)
	ownedIn := ownedSkills(owned)

	// Fan the per-posting required-skill fetch and scoring out over the
	// pool; each task writes only its own slot.
	scored := make([]*Recommendation, len(postings))
	p := pool.New(e.workers, len(postings))
	for i := range postings {
		i := i
		posting := postings[i]
		p.Submit(func(ctx context.Context) error {
			required, err := e.jobSkills.FindByJobID(ctx, posting.ID)
			if err != nil {
				return err
			}
			b := matching.Score(candIn, jobInput(posting), required, ownedIn)
			if b.Total > recommendationMinScore {
				scored[i] = &Recommendation{Job: posting, Score: b}
			}
			return nil
		})
	}
	p.Close()

	for res := range p.Run(ctx) {
		if res.Err != nil {
			e.logger.Printf("Recommendation | scoring task failed | candidate=%s error=%v", candidateID, res.Err)
			return nil, ErrInternal
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Recommendation, 0, len(scored))
	for _, r := range scored {
		if r != nil {
			out = append(out, *r)
		}
	}

	// The pool gives no ordering guarantee; re-sort for a deterministic
	// total order. Ties break on posting id ascending.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score.Total != out[j].Score.Total {
			return out[i].Score.Total > out[j].Score.Total
		}
		return bytes.Compare(out[i].Job.ID[:], out[j].Job.ID[:]) < 0
	})

	if len(out) > recommendationLimit {
		out = out[:recommendationLimit]
	}

	if e.cache != nil {
		if err := e.cache.SetJSON(ctx, cacheKey, out, recommendationCacheTTL); err != nil {
			e.logger.Printf("Recommendation | cache write failed | candidate=%s error=%v", candidateID, err)
		}
	}

	return out, nil
}
