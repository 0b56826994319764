package db

import (
	"fmt"
	"log"

	"github.com/meinhoongagan/home-services-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.ProviderProfile{},
		&models.Service{},
		&models.Booking{},
		&models.Notification{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
