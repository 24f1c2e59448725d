package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Knocktern/Job-Matching-System/internal/domain/matching"
	"github.com/Knocktern/Job-Matching-System/internal/domain/notification"
	"github.com/Knocktern/Job-Matching-System/internal/pool"
	"github.com/Knocktern/Job-Matching-System/internal/repository"

	"github.com/google/uuid"
)

const (
	// notifyThreshold is inclusive: a score of exactly 70 notifies.
	notifyThreshold = 70

	matchNotificationTitle = "New Job Match!"
)

// NotificationSink receives match events. Delivery guarantees are the
// sink's responsibility; the notifier fires and forgets.
type NotificationSink interface {
	Emit(ctx context.Context, userID uuid.UUID, title, message, category, actionURL string) error
}

// MultiSink fans one event out to several sinks.
type MultiSink []NotificationSink

func (m MultiSink) Emit(ctx context.Context, userID uuid.UUID, title, message, category, actionURL string) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Emit(ctx, userID, title, message, category, actionURL); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type MatchNotifierUsecase interface {
	// NotifyMatches scores a freshly created posting against every active
	// candidate and emits an event per high match. Invoked once per
	// posting by the creation workflow.
	NotifyMatches(ctx context.Context, jobID uuid.UUID) error
}

type MatchNotifier struct {
	jobs            repository.JobRepository
	jobSkills       repository.JobRequiredSkillRepository
	candidates      repository.CandidateRepository
	candidateSkills repository.CandidateSkillRepository

	sink    NotificationSink
	workers int
	logger  *log.Logger
}

func NewMatchNotifier(
	jobs repository.JobRepository,
	jobSkills repository.JobRequiredSkillRepository,
	candidates repository.CandidateRepository,
	candidateSkills repository.CandidateSkillRepository,
	sink NotificationSink,
	workers int,
	logger *log.Logger,
) *MatchNotifier {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &MatchNotifier{
		jobs:            jobs,
		jobSkills:       jobSkills,
		candidates:      candidates,
		candidateSkills: candidateSkills,
		sink:            sink,
		workers:         workers,
		logger:          logger,
	}
}

func (n *MatchNotifier) NotifyMatches(ctx context.Context, jobID uuid.UUID) error {
	if jobID == uuid.Nil {
		return ErrInvalidInput
	}

	posting, err := n.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			n.logger.Printf("MatchNotifier | job missing, skipping batch | job=%s", jobID)
			return nil
		}
		return ErrInternal
	}

	required, err := n.jobSkills.FindByJobID(ctx, jobID)
	if err != nil {
		return ErrInternal
	}

	candidates, err := n.candidates.ListActive(ctx)
	if err != nil {
		return ErrInternal
	}
	if len(candidates) == 0 {
		return nil
	}

	jobIn := jobInput(posting)
	actionURL := "/jobs/" + jobID.String()

	p := pool.New(n.workers, len(candidates))
	for _, cand := range candidates {
		cand := cand
		p.Submit(func(ctx context.Context) error {
			owned, err := n.candidateSkills.FindByCandidateID(ctx, cand.ID)
			if err != nil {
				return fmt.Errorf("candidate %s: fetch skills: %w", cand.ID, err)
			}

			b := matching.Score(candidateInput(cand), jobIn, required, ownedSkills(owned))
			if b.Total < notifyThreshold {
				return nil
			}

			message := fmt.Sprintf("A new job %q matches your profile with %d%% compatibility!", posting.Title, b.Total)
			if err := n.sink.Emit(ctx, cand.UserID, matchNotificationTitle, message,
				notification.CategoryJobMatch, actionURL); err != nil {
				return fmt.Errorf("candidate %s: emit: %w", cand.ID, err)
			}
			return nil
		})
	}
	p.Close()

	// One candidate's failure never aborts the batch; it is logged and
	// the remaining candidates proceed.
	for res := range p.Run(ctx) {
		if res.Err != nil {
			n.logger.Printf("MatchNotifier | notify failed | job=%s error=%v", jobID, res.Err)
		}
	}

	// Best-effort early termination: events already emitted stand.
	return ctx.Err()
}
