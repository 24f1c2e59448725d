package handler

import (
	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/dto"
	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/middleware"
	"github.com/Knocktern/Job-Matching-System/internal/pkg/response"
	"github.com/Knocktern/Job-Matching-System/internal/repository"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	skills repository.SkillRepository
}

func NewSkillHandler(skills repository.SkillRepository) *SkillHandler {
	return &SkillHandler{skills: skills}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.ListSkills)
}

func (h *SkillHandler) ListSkills(c fiber.Ctx) error {
	items, err := h.skills.ListAll(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
