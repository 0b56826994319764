package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/controllers/provider"
	"github.com/meinhoongagan/home-services-app/middleware"
	"github.com/meinhoongagan/home-services-app/models"
)

// SetupProviderRoutes configures all provider related routes
func SetupProviderRoutes(app *fiber.App) {
	group := app.Group("/provider", middleware.Protected(), middleware.RequireRole(models.RoleProvider))

	group.Get("/services", provider.GetServices)
	group.Post("/services", provider.CreateService)
	group.Put("/services/:id", provider.UpdateService)
	group.Delete("/services/:id", provider.DeleteService)

	group.Get("/bookings", provider.GetBookings)
	group.Put("/bookings/:id/status", provider.UpdateBookingStatus)

	group.Get("/earnings", provider.GetEarnings)
}
