package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/controllers"
	"github.com/meinhoongagan/home-services-app/middleware"
)

// SetupNotificationRoutes configures the notification side-channel routes
func SetupNotificationRoutes(app *fiber.App) {
	group := app.Group("/notifications", middleware.Protected())

	group.Get("/", controllers.GetNotifications)
	group.Get("/unread-count", controllers.GetUnreadCount)
	group.Put("/read-all", controllers.MarkAllAsRead)
	group.Put("/:id/read", controllers.MarkAsRead)
	group.Delete("/", controllers.ClearAll)
}
