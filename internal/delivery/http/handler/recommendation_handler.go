package handler

import (
	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/dto"
	"github.com/Knocktern/Job-Matching-System/internal/pkg/response"
	"github.com/Knocktern/Job-Matching-System/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/candidates/:candidateID/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidateID")
	if err != nil {
		return err
	}

	items, err := h.uc.GetRecommendations(c.Context(), candidateID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.RecommendationItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendationItemResponse{
			JobID:      it.Job.ID,
			CompanyID:  it.Job.CompanyID,
			Title:      it.Job.Title,
			Location:   it.Job.Location,
			SalaryMin:  it.Job.SalaryMin,
			SalaryMax:  it.Job.SalaryMax,
			MatchScore: it.Score.Total,
			Breakdown:  dto.NewScoreBreakdownResponse(it.Score),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
