package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/meinhoongagan/home-services-app/cron"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/redis"
	"github.com/meinhoongagan/home-services-app/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()
	db.SeedAdmin()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Server is running!"})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupCustomerRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupNotificationRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
