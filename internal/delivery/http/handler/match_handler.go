package handler

import (
	"errors"

	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/dto"
	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/middleware"
	"github.com/Knocktern/Job-Matching-System/internal/pkg/response"
	"github.com/Knocktern/Job-Matching-System/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/candidates/:candidateID/match/:jobID", h.GetMatch)
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidateID")
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "jobID")
	if err != nil {
		return err
	}

	res, err := h.uc.CalculateMatch(c.Context(), candidateID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchResponse{
		CandidateID: res.CandidateID,
		JobID:       res.JobID,
		Found:       res.Found,
		Breakdown:   dto.NewScoreBreakdownResponse(res.Breakdown),
	})
}

func parseUUIDParam(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return id, nil
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
