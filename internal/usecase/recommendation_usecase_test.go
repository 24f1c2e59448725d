package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/Knocktern/Job-Matching-System/internal/domain/candidate"
	"github.com/Knocktern/Job-Matching-System/internal/domain/job"
	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"

	"github.com/google/uuid"
)

func activePosting(title string, experienceRequired int) job.Posting {
	return job.Posting{
		ID:                 uuid.New(),
		CompanyID:          uuid.New(),
		Title:              title,
		ExperienceRequired: experienceRequired,
		IsActive:           true,
	}
}

func newEngine(
	candidates mockCandidateRepo,
	candidateSkills mockCandidateSkillRepo,
	jobs mockJobRepo,
	jobSkills mockJobSkillRepo,
	applications mockApplicationRepo,
	cache RecommendationCache,
) *RecommendationEngine {
	return NewRecommendationEngine(candidates, candidateSkills, jobs, jobSkills, applications, cache, 4, nil)
}

func TestRecommendationEngine_UnknownCandidateIsEmpty(t *testing.T) {
	eng := newEngine(
		mockCandidateRepo{},
		mockCandidateSkillRepo{},
		mockJobRepo{},
		mockJobSkillRepo{},
		mockApplicationRepo{},
		nil,
	)

	out, err := eng.GetRecommendations(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty recommendations, got %d", len(out))
	}
}

func TestRecommendationEngine_ExcludesAppliedJobs(t *testing.T) {
	candID := uuid.New()
	applied := activePosting("Applied Job", 0)
	fresh := activePosting("Fresh Job", 0)

	eng := newEngine(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candID: {ID: candID, ExperienceYears: 5}}},
		mockCandidateSkillRepo{},
		mockJobRepo{jobs: map[uuid.UUID]job.Posting{applied.ID: applied, fresh.ID: fresh}},
		mockJobSkillRepo{},
		mockApplicationRepo{applied: map[uuid.UUID][]uuid.UUID{candID: {applied.ID}}},
		nil,
	)

	out, err := eng.GetRecommendations(context.Background(), candID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(out))
	}
	if out[0].Job.ID != fresh.ID {
		t.Fatalf("applied job leaked into recommendations")
	}
}

func TestRecommendationEngine_MinScoreCutoffIsStrict(t *testing.T) {
	candID := uuid.New()
	loc := "Hamburg"
	jobLoc := "Munich"

	// No required skills (25) + mismatched locations (5) = exactly 30:
	// must be dropped. Matching location (10) pushes a twin posting to 35.
	atCutoff := activePosting("At Cutoff", 20)
	atCutoff.Location = &jobLoc
	above := activePosting("Above Cutoff", 20)
	above.Location = &loc

	eng := newEngine(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candID: {ID: candID, ExperienceYears: 0, Location: &loc}}},
		mockCandidateSkillRepo{},
		mockJobRepo{jobs: map[uuid.UUID]job.Posting{atCutoff.ID: atCutoff, above.ID: above}},
		mockJobSkillRepo{},
		mockApplicationRepo{},
		nil,
	)

	out, err := eng.GetRecommendations(context.Background(), candID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(out))
	}
	if out[0].Job.ID != above.ID {
		t.Fatalf("expected only the above-cutoff posting")
	}
	if out[0].Score.Total != 35 {
		t.Fatalf("expected score 35, got %d", out[0].Score.Total)
	}
}

func TestRecommendationEngine_SortedDescWithStableTieBreak(t *testing.T) {
	candID := uuid.New()
	skillID := uuid.New()

	// Three identical postings tie at 80 (30 exp + 50 skills); one weaker
	// posting lands at 55 (30 exp + 25 no-skill default).
	jobs := map[uuid.UUID]job.Posting{}
	jobSkills := map[uuid.UUID][]matching.RequiredSkill{}
	for i := 0; i < 3; i++ {
		p := activePosting("Tied", 0)
		jobs[p.ID] = p
		jobSkills[p.ID] = []matching.RequiredSkill{{SkillID: skillID, Importance: matching.ImportanceRequired}}
	}
	weak := activePosting("Weaker", 0)
	jobs[weak.ID] = weak

	eng := newEngine(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candID: {ID: candID, ExperienceYears: 1}}},
		mockCandidateSkillRepo{byCandidate: map[uuid.UUID][]candidate.Skill{candID: {{SkillID: skillID, SkillName: "Go"}}}},
		mockJobRepo{jobs: jobs},
		mockJobSkillRepo{byJob: jobSkills},
		mockApplicationRepo{},
		nil,
	)

	for run := 0; run < 5; run++ {
		out, err := eng.GetRecommendations(context.Background(), candID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(out) != 4 {
			t.Fatalf("expected 4 recommendations, got %d", len(out))
		}
		for i := 1; i < len(out); i++ {
			prev, cur := out[i-1], out[i]
			if cur.Score.Total > prev.Score.Total {
				t.Fatalf("not sorted desc at idx=%d: %d > %d", i, cur.Score.Total, prev.Score.Total)
			}
			if cur.Score.Total == prev.Score.Total &&
				bytes.Compare(prev.Job.ID[:], cur.Job.ID[:]) > 0 {
				t.Fatalf("tie-break not by posting id ascending at idx=%d", i)
			}
		}
		if out[len(out)-1].Job.ID != weak.ID {
			t.Fatalf("expected weakest posting last")
		}
	}
}

func TestRecommendationEngine_TruncatesToTopTen(t *testing.T) {
	candID := uuid.New()

	jobs := map[uuid.UUID]job.Posting{}
	for i := 0; i < 15; i++ {
		p := activePosting("Open Role", 0)
		jobs[p.ID] = p
	}

	eng := newEngine(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candID: {ID: candID, ExperienceYears: 2}}},
		mockCandidateSkillRepo{},
		mockJobRepo{jobs: jobs},
		mockJobSkillRepo{},
		mockApplicationRepo{},
		nil,
	)

	out, err := eng.GetRecommendations(context.Background(), candID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 10 {
		t.Fatalf("expected 10 recommendations, got %d", len(out))
	}
}

func TestRecommendationEngine_CacheRoundTrip(t *testing.T) {
	candID := uuid.New()
	posting := activePosting("Cached Role", 0)

	cache := &mockCache{}
	eng := newEngine(
		mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{candID: {ID: candID, ExperienceYears: 3}}},
		mockCandidateSkillRepo{},
		mockJobRepo{jobs: map[uuid.UUID]job.Posting{posting.ID: posting}},
		mockJobSkillRepo{},
		mockApplicationRepo{},
		cache,
	)

	first, err := eng.GetRecommendations(context.Background(), candID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := eng.GetRecommendations(context.Background(), candID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit must not rewrite, got %d writes", cache.sets)
	}
	if len(first) != len(second) || first[0].Job.ID != second[0].Job.ID || first[0].Score != second[0].Score {
		t.Fatalf("cached response diverges: %+v vs %+v", first, second)
	}
}

func TestRecommendationEngine_NilCandidateID(t *testing.T) {
	eng := newEngine(mockCandidateRepo{}, mockCandidateSkillRepo{}, mockJobRepo{}, mockJobSkillRepo{}, mockApplicationRepo{}, nil)
	if _, err := eng.GetRecommendations(context.Background(), uuid.Nil); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
