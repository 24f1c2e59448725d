package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Knocktern/Job-Matching-System/internal/domain/candidate"
	"github.com/Knocktern/Job-Matching-System/internal/domain/job"
	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"
	"github.com/Knocktern/Job-Matching-System/internal/repository"

	"github.com/google/uuid"
)

type mockCandidateRepo struct {
	profiles map[uuid.UUID]candidate.Profile
	active   []candidate.Profile
	err      error
}

func (m mockCandidateRepo) GetByID(_ context.Context, id uuid.UUID) (candidate.Profile, error) {
	if m.err != nil {
		return candidate.Profile{}, m.err
	}
	p, ok := m.profiles[id]
	if !ok {
		return candidate.Profile{}, repository.ErrCandidateNotFound
	}
	return p, nil
}

func (m mockCandidateRepo) ListActive(context.Context) ([]candidate.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.active, nil
}

type mockCandidateSkillRepo struct {
	byCandidate map[uuid.UUID][]candidate.Skill
	errFor      map[uuid.UUID]error
}

func (m mockCandidateSkillRepo) FindByCandidateID(_ context.Context, id uuid.UUID) ([]candidate.Skill, error) {
	if err, ok := m.errFor[id]; ok {
		return nil, err
	}
	return m.byCandidate[id], nil
}

type mockJobRepo struct {
	jobs map[uuid.UUID]job.Posting
	err  error
}

func (m mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	p, ok := m.jobs[id]
	if !ok {
		return job.Posting{}, repository.ErrJobNotFound
	}
	return p, nil
}

func (m mockJobRepo) ListActiveExcluding(_ context.Context, excluded []uuid.UUID) ([]job.Posting, error) {
	if m.err != nil {
		return nil, m.err
	}
	skip := make(map[uuid.UUID]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}
	out := make([]job.Posting, 0, len(m.jobs))
	for _, p := range m.jobs {
		if !p.IsActive {
			continue
		}
		if _, ok := skip[p.ID]; ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type mockJobSkillRepo struct {
	byJob map[uuid.UUID][]matching.RequiredSkill
	err   error
}

func (m mockJobSkillRepo) FindByJobID(_ context.Context, id uuid.UUID) ([]matching.RequiredSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byJob[id], nil
}

type mockApplicationRepo struct {
	applied map[uuid.UUID][]uuid.UUID
	err     error

	created *[]appliedPair
}

type appliedPair struct {
	CandidateID uuid.UUID
	JobID       uuid.UUID
}

func (m mockApplicationRepo) AppliedJobIDs(_ context.Context, candidateID uuid.UUID) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.applied[candidateID], nil
}

func (m mockApplicationRepo) Create(_ context.Context, candidateID, jobID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for _, id := range m.applied[candidateID] {
		if id == jobID {
			return repository.ErrDuplicateApplication
		}
	}
	if m.created != nil {
		*m.created = append(*m.created, appliedPair{CandidateID: candidateID, JobID: jobID})
	}
	return nil
}

type sinkEvent struct {
	UserID    uuid.UUID
	Title     string
	Message   string
	Category  string
	ActionURL string
}

type mockSink struct {
	mu      sync.Mutex
	events  []sinkEvent
	failFor map[uuid.UUID]error
}

func (m *mockSink) Emit(_ context.Context, userID uuid.UUID, title, message, category, actionURL string) error {
	if err, ok := m.failFor[userID]; ok {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, sinkEvent{
		UserID: userID, Title: title, Message: message, Category: category, ActionURL: actionURL,
	})
	return nil
}

func (m *mockSink) Events() []sinkEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sinkEvent, len(m.events))
	copy(out, m.events)
	return out
}

type mockCache struct {
	mu    sync.Mutex
	store map[string][]byte
	gets  int
	sets  int
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	return nil
}
