package app

import (
	"fmt"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/pkg/logger"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

// Deps are the collaborators New wires into the HTTP layer. Cache, DB and
// CachePing may be nil.
type Deps struct {
	Catalog   repository.CatalogRepository
	Cache     usecase.MatchCache
	DB        usecase.Pinger
	CachePing usecase.Pinger
	Logger    *zap.Logger
}

func New(cfg config.Config, deps Deps) *App {
	log := logger.OrNop(deps.Logger)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, log)
	registerRoutes(f, cfg, deps, log)

	return &App{Fiber: f}
}

// Bootstrap builds the container for cfg and the app on top of it. The
// returned cleanup releases the container's resources.
func Bootstrap(cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	deps := Deps{Catalog: c.Catalog, Logger: c.Logger}
	if c.DB != nil {
		deps.DB = c.DB
	}
	if c.Cache != nil {
		deps.Cache = c.Cache
		deps.CachePing = c.Cache
	}

	app := New(cfg, deps)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, cfg config.Config, deps Deps, log *zap.Logger) {
	if app == nil {
		return
	}

	routes.NewRegistry(v1.Handlers{
		Match:      handler.NewMatchHandler(usecase.NewMatchingUsecase(deps.Catalog, deps.Cache, log)),
		Comparison: handler.NewComparisonHandler(usecase.NewComparisonUsecase(deps.Catalog, log)),
		Profile:    handler.NewProfileHandler(usecase.NewProfileUsecase(log)),
		Catalog:    handler.NewCatalogHandler(usecase.NewCatalogUsecase(deps.Catalog)),
		Status:     handler.NewStatusHandler(usecase.NewStatusUsecase(sourceName(cfg.Catalog.Source), deps.Catalog, deps.DB, deps.CachePing)),
	}).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
