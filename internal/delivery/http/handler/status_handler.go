package handler

import (
	"time"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatusHandler struct {
	uc usecase.StatusUsecase
}

func NewStatusHandler(uc usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/status", h.GetStatus)
}

// GetStatus answers 503 while the catalog cannot be read, so it doubles as a
// readiness probe.
func (h *StatusHandler) GetStatus(c fiber.Ctx) error {
	st := h.uc.GetStatus(c.Context())

	out := dto.StatusResponse{
		CatalogSource:   st.CatalogSource,
		TotalCareers:    st.TotalCareers,
		CatalogHealthy:  st.CatalogHealthy,
		DatabaseHealthy: st.DatabaseHealthy,
		CacheHealthy:    st.CacheHealthy,
		ServerTime:      st.ServerTime.Format(time.RFC3339),
	}

	if !st.CatalogHealthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "Catalog unavailable", out)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
