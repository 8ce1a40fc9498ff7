package routers

import (
	"medicare-portal/internal/app/delivery/http/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, limiter func(http.Handler) http.Handler, authController *controllers.AuthController) {
	router.Get("/me", authController.Me)
	router.Post("/logout", authController.Logout)

	router.Group(func(r chi.Router) {
		r.Use(limiter)
		r.Post("/login", authController.Login)
		r.Post("/signup/member", authController.SignupMember)
		r.Post("/signup/doctor", authController.SignupDoctor)
		r.Post("/forgot-password", authController.ForgotPassword)
		r.Post("/reset-password", authController.ResetPassword)
	})
}
