package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Knocktern/Job-Matching-System/internal/domain/candidate"
	"github.com/Knocktern/Job-Matching-System/internal/domain/job"

	"github.com/google/uuid"
)

func TestApplication_ApplyInvalidatesCachedRecommendations(t *testing.T) {
	candID := uuid.New()
	posting := activePosting("Open Role", 0)

	cache := &mockCache{}
	cacheKey := "recommendations:" + candID.String()
	if err := cache.SetJSON(context.Background(), cacheKey, []Recommendation{{Job: posting}}, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	var created []appliedPair
	u := NewApplicationUsecase(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candID: {ID: candID}}},
		mockJobRepo{jobs: map[uuid.UUID]job.Posting{posting.ID: posting}},
		mockApplicationRepo{created: &created},
		cache,
		nil,
	)

	if err := u.Apply(context.Background(), candID, posting.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(created) != 1 || created[0].JobID != posting.ID {
		t.Fatalf("application not recorded: %+v", created)
	}

	var stale []Recommendation
	if ok, _ := cache.GetJSON(context.Background(), cacheKey, &stale); ok {
		t.Fatalf("cached recommendations must be invalidated on apply")
	}
}

func TestApplication_ApplyTwiceIsAlreadyApplied(t *testing.T) {
	candID := uuid.New()
	posting := activePosting("Open Role", 0)

	u := NewApplicationUsecase(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candID: {ID: candID}}},
		mockJobRepo{jobs: map[uuid.UUID]job.Posting{posting.ID: posting}},
		mockApplicationRepo{applied: map[uuid.UUID][]uuid.UUID{candID: {posting.ID}}},
		nil,
		nil,
	)

	if err := u.Apply(context.Background(), candID, posting.ID); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplication_ApplyToMissingOrInactiveJob(t *testing.T) {
	candID := uuid.New()
	inactive := activePosting("Closed Role", 0)
	inactive.IsActive = false

	u := NewApplicationUsecase(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candID: {ID: candID}}},
		mockJobRepo{jobs: map[uuid.UUID]job.Posting{inactive.ID: inactive}},
		mockApplicationRepo{},
		nil,
		nil,
	)

	if err := u.Apply(context.Background(), candID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing job, got %v", err)
	}
	if err := u.Apply(context.Background(), candID, inactive.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive job, got %v", err)
	}
}

func TestApplication_ApplyUnknownCandidate(t *testing.T) {
	posting := activePosting("Open Role", 0)
	u := NewApplicationUsecase(
		mockCandidateRepo{},
		mockJobRepo{jobs: map[uuid.UUID]job.Posting{posting.ID: posting}},
		mockApplicationRepo{},
		nil,
		nil,
	)

	if err := u.Apply(context.Background(), uuid.New(), posting.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := u.Apply(context.Background(), uuid.Nil, posting.ID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
