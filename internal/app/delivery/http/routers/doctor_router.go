package routers

import (
	"medicare-portal/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindDoctors)
	router.Post("/filters", doctorController.ApplyFilters)
}
