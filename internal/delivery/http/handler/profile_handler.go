package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/user-profile", h.SubmitProfile)
}

func (h *ProfileHandler) SubmitProfile(c fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	receipt, err := h.uc.SubmitProfile(c.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidProfile) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	interests := receipt.Profile.Interests
	if interests == nil {
		interests = []string{}
	}
	out := dto.ProfileReceiptResponse{
		SkillCount: receipt.SkillCount,
		Domains:    receipt.Domains,
		Education:  string(receipt.Profile.Education),
		Interests:  interests,
		Behavioral: dto.BehavioralResponse{
			Pace: string(receipt.Profile.Behavioral.Pace),
			Risk: string(receipt.Profile.Behavioral.Risk),
		},
		Warnings: receipt.Warnings,
	}
	return response.Success(c, fiber.StatusCreated, "Profile received", out)
}
