package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ComparisonHandler struct {
	uc usecase.ComparisonUsecase
}

func NewComparisonHandler(uc usecase.ComparisonUsecase) *ComparisonHandler {
	return &ComparisonHandler{uc: uc}
}

func (h *ComparisonHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/compare-careers", h.CompareCareers)
}

func (h *ComparisonHandler) CompareCareers(c fiber.Ctx) error {
	var req dto.CompareCareersRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.CompareCareers(c.Context(), req.JobIDs)
	if err != nil {
		return mapComparisonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCareerComparisonResponses(items))
}

func mapComparisonUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNoJobsSelected):
		return middleware.NewAppError(fiber.StatusBadRequest, "No jobs selected", nil, err)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Catalog unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
