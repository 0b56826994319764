package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/controllers/customer"
	"github.com/meinhoongagan/home-services-app/middleware"
	"github.com/meinhoongagan/home-services-app/models"
)

// SetupCustomerRoutes configures all customer related routes
func SetupCustomerRoutes(app *fiber.App) {
	group := app.Group("/customer", middleware.Protected())

	// Profile routes are open to any authenticated role
	group.Get("/profile", customer.GetProfile)
	group.Patch("/profile", customer.UpdateProfile)
	group.Post("/profile/picture", customer.UpdateProfilePicture)

	customerOnly := middleware.RequireRole(models.RoleCustomer)
	group.Get("/services", customerOnly, customer.GetServices)
	group.Get("/services/:id", customerOnly, customer.GetService)
	group.Post("/bookings", customerOnly, customer.CreateBooking)
	group.Get("/bookings", customerOnly, customer.GetBookings)
	group.Get("/bookings/:id", customerOnly, customer.GetBooking)
	group.Put("/bookings/:id/cancel", customerOnly, customer.CancelBooking)
	group.Post("/reviews", customerOnly, customer.CreateReview)
	group.Get("/providers/:id/reviews", customerOnly, customer.GetProviderReviews)
}
