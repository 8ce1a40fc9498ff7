package routers

import (
	"medicare-portal/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachMemberRoutes(router chi.Router, memberController *controllers.MemberController) {
	router.Put("/me", memberController.UpdateProfile)
}
