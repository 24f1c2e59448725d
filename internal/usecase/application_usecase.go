package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/Knocktern/Job-Matching-System/internal/repository"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	// Apply records the candidate's application to a posting. The cached
	// recommendation list is invalidated so the posting disappears from it
	// immediately instead of at TTL expiry.
	Apply(ctx context.Context, candidateID, jobID uuid.UUID) error
}

type Application struct {
	candidates   repository.CandidateRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository

	cache  RecommendationCache
	logger *log.Logger
}

func NewApplicationUsecase(
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	cache RecommendationCache,
	logger *log.Logger,
) *Application {
	if logger == nil {
		logger = log.Default()
	}
	return &Application{
		candidates:   candidates,
		jobs:         jobs,
		applications: applications,
		cache:        cache,
		logger:       logger,
	}
}

func (u *Application) Apply(ctx context.Context, candidateID, jobID uuid.UUID) error {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return ErrInvalidInput
	}

	if _, err := u.candidates.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if !posting.IsActive {
		return ErrNotFound
	}

	if err := u.applications.Create(ctx, candidateID, jobID); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return ErrAlreadyApplied
		}
		return ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, "recommendations:"+candidateID.String()); err != nil {
			u.logger.Printf("Application | cache invalidation failed | candidate=%s error=%v", candidateID, err)
		}
	}

	return nil
}
