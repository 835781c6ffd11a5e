package handler

import (
	"errors"
	"strconv"
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
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
	r.Post("/job-match", h.MatchJobs)
}

// MatchJobs ranks the catalog for the profile in the request body.
// Optional query params: limit (0 = all) and min_score.
func (h *MatchHandler) MatchJobs(c fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil || limit < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	minScore, err := parseQueryFloatStrict(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
	}

	matches, err := h.uc.MatchCareers(c.Context(), req.ToDomain(), usecase.MatchParams{
		Limit:    limit,
		MinScore: minScore,
	})
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobMatchResponses(matches))
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Catalog unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func parseQueryFloatStrict(c fiber.Ctx, key string, defaultVal float64) (float64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(s, 64)
}
