package handler

import (
	"strconv"
	"strings"

	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/dto"
	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/middleware"
	"github.com/Knocktern/Job-Matching-System/internal/pkg/response"
	"github.com/Knocktern/Job-Matching-System/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillGapHandler struct {
	uc usecase.SkillGapUsecase
}

func NewSkillGapHandler(uc usecase.SkillGapUsecase) *SkillGapHandler {
	return &SkillGapHandler{uc: uc}
}

func (h *SkillGapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/candidates/:candidateID/skill-gaps", h.GetSkillGaps)
}

// GetSkillGaps analyzes the candidate against the postings named by the
// job_ids query parameter, or the top recommendations when it is absent.
func (h *SkillGapHandler) GetSkillGaps(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidateID")
	if err != nil {
		return err
	}

	jobIDs, err := parseJobIDsQuery(c.Query("job_ids"))
	if err != nil {
		return err
	}

	includeScore := false
	if raw := c.Query("include_score"); raw != "" {
		includeScore, _ = strconv.ParseBool(raw)
	}

	items, err := h.uc.AnalyzeGaps(c.Context(), candidateID, jobIDs, includeScore)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.SkillGapItemResponse, 0, len(items))
	for _, it := range items {
		item := dto.SkillGapItemResponse{
			JobID:    it.JobID,
			JobTitle: it.JobTitle,
			Found:    it.Found,
			Matched:  dto.NewSkillGapSkillItems(it.Matched),
			Missing:  dto.NewSkillGapSkillItems(it.Missing),
		}
		if it.Score != nil {
			b := dto.NewScoreBreakdownResponse(*it.Score)
			item.Score = &b
		}
		out = append(out, item)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseJobIDsQuery(raw string) ([]uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid job_ids", nil, err)
		}
		out = append(out, id)
	}
	return out, nil
}
