package routes

import (
	"time"

	"jcw/jcw/config"
	"jcw/jcw/controllers"
	"jcw/jcw/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Controllers struct {
	Health    *controllers.HealthController
	Assistant *controllers.AssistantController
	Tenant    *controllers.TenantController
	Auth      *controllers.AuthController
	Templates *controllers.TemplatesController
	Activity  *controllers.ActivityController
}

// NewRouter assembles the full HTTP surface.
func NewRouter(cfg config.Config, c Controllers) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.TenantHeaders(cfg.TenantHostSuffixes))

	r.Mount("/health", HealthRoutes(c.Health))
	r.Mount("/auth", AuthRoutes(c.Auth))
	r.Mount("/admin", AdminRoutes(c.Templates, c.Activity, cfg))

	// websockets outlive the request timeout, so only the plain routes get it
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.Timeout(60 * time.Second))
		TenantRoutes(gr, c.Tenant)
	})
	r.Mount("/assistant", AssistantRoutes(c.Assistant, cfg.WSOriginPatterns))
	return r
}
