package routes

import (
	"career-compass/internal/delivery/http/handler"
	v1 "career-compass/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// Registry mounts the health probe at the root and the versioned API
// under /api.
type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
}

func NewRegistry(h v1.Handlers) *Registry {
	return &Registry{health: handler.NewHealthHandler(), v1: h}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
