package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/careers", h.ListCareers)
}

func (h *CatalogHandler) ListCareers(c fiber.Ctx) error {
	jobs, err := h.uc.ListCareers(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Catalog unavailable", nil, err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dto.NewJobResponse(j))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
