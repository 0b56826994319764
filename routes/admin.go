package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/controllers/admin"
	"github.com/meinhoongagan/home-services-app/middleware"
	"github.com/meinhoongagan/home-services-app/models"
)

// SetupAdminRoutes configures all admin related routes
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	group.Get("/users", admin.GetUsers)
	group.Put("/users/:id/status", admin.UpdateUserStatus)
	group.Get("/providers", admin.GetProviders)
	group.Put("/providers/:id/approve", admin.ApproveProvider)
	group.Get("/bookings", admin.GetBookings)
	group.Get("/reports", admin.GetReports)
}
