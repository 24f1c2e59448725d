package handler

import (
	"errors"

	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/middleware"
	"github.com/Knocktern/Job-Matching-System/internal/pkg/response"
	"github.com/Knocktern/Job-Matching-System/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type applyRequest struct {
	JobID uuid.UUID `json:"job_id"`
}

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/candidates/:candidateID/applications", h.Apply)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidateID")
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if req.JobID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing job_id", nil, nil)
	}

	if err := h.uc.Apply(c.Context(), candidateID, req.JobID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
		case errors.Is(err, usecase.ErrAlreadyApplied):
			return middleware.NewAppError(fiber.StatusBadRequest, "Already applied", nil, err)
		default:
			return mapUsecaseError(err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"candidate_id": candidateID,
		"job_id":       req.JobID,
	})
}
