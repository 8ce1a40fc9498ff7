package routers

import (
	"fmt"
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/delivery/http/controllers"
	"medicare-portal/internal/app/delivery/http/middlewares"
	"medicare-portal/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	doctorController *controllers.DoctorController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.VisitorID)

	authLimiter := newAuthLimiter(internalConfig, middlewares)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
				attachAuthRoutes(r, authLimiter, authController)
			})

			r.Route("/"+constvars.ResourceMembers, func(r chi.Router) {
				attachMemberRoutes(r, memberController)
			})

			r.Route("/"+constvars.ResourceDoctors, func(r chi.Router) {
				attachDoctorRoutes(r, doctorController)
			})
		})
	})

	attachPageRoutes(router, middlewares, internalConfig.App.FrontendDomain)
}

func newAuthLimiter(internalConfig *config.InternalConfig, m *middlewares.Middlewares) func(http.Handler) http.Handler {
	limiter := middlewares.NewRateLimiter(
		internalConfig.App.AuthRateLimitPerSecond,
		internalConfig.App.AuthRateLimitBurst,
		time.Duration(internalConfig.App.AuthRateLimitBlockInSeconds)*time.Second,
		m.Log,
	)
	return limiter.Limit
}
