package v1

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups the v1 endpoints. A nil handler leaves its route
// unregistered.
type Handlers struct {
	Match      *handler.MatchHandler
	Comparison *handler.ComparisonHandler
	Profile    *handler.ProfileHandler
	Catalog    *handler.CatalogHandler
	Status     *handler.StatusHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Comparison != nil {
		h.Comparison.RegisterRoutes(r)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(r)
	}
	if h.Catalog != nil {
		h.Catalog.RegisterRoutes(r)
	}
	if h.Status != nil {
		h.Status.RegisterRoutes(r)
	}
}
