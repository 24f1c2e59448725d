package handler

import (
	"context"
	"strconv"

	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/dto"
	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/middleware"
	"github.com/Knocktern/Job-Matching-System/internal/domain/notification"
	"github.com/Knocktern/Job-Matching-System/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NotificationLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]notification.Notification, error)
}

type NotificationHandler struct {
	store NotificationLister
}

func NewNotificationHandler(store NotificationLister) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/notifications", h.ListNotifications)
}

// ListNotifications returns the authenticated user's notifications, newest
// first.
func (h *NotificationHandler) ListNotifications(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}

	items, err := h.store.ListByUserID(c.Context(), userID, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Category:  n.Category,
			ActionURL: n.ActionURL,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
