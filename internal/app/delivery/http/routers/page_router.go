package routers

import (
	"medicare-portal/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// attachPageRoutes forwards every request outside the API to the frontend,
// redirecting page requests the visitor's role may not open.
func attachPageRoutes(router chi.Router, middlewares *middlewares.Middlewares, frontendDomain string) {
	bridge := middlewares.Bridge(frontendDomain)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RouteGuard)
		r.Use(middlewares.BodyBuffer)
		r.Handle("/*", bridge)
	})
}
