package handler

import (
	"context"
	"time"

	"github.com/Knocktern/Job-Matching-System/internal/pkg/response"
	"github.com/Knocktern/Job-Matching-System/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// notifyLockTTL bounds how often one posting can trigger a notification
// batch. Retries inside the window are acknowledged but skipped.
const notifyLockTTL = 60 * time.Second

// NotifyLocker is the SetNX face of the Redis client. A nil locker
// disables dedup and every request runs the batch.
type NotifyLocker interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type JobEventHandler struct {
	notifier usecase.MatchNotifierUsecase
	locker   NotifyLocker
}

func NewJobEventHandler(notifier usecase.MatchNotifierUsecase, locker NotifyLocker) *JobEventHandler {
	return &JobEventHandler{notifier: notifier, locker: locker}
}

func (h *JobEventHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs/:jobID/notify-matches", h.NotifyMatches)
}

// NotifyMatches runs the match-notification batch for a freshly published
// posting. The caller is the posting workflow, invoked once per posting;
// the lock absorbs accidental double submission.
func (h *JobEventHandler) NotifyMatches(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "jobID")
	if err != nil {
		return err
	}

	if h.locker != nil {
		acquired, err := h.locker.SetIfNotExists(c.Context(), "notify:lock:"+jobID.String(), "1", notifyLockTTL)
		if err == nil && !acquired {
			return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
				"job_id": jobID,
				"queued": false,
			})
		}
	}

	if err := h.notifier.NotifyMatches(c.Context(), jobID); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"job_id": jobID,
		"queued": true,
	})
}
