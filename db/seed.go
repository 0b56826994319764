package db

import (
	"log"
	"os"
	"strings"

	"github.com/meinhoongagan/home-services-app/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin bootstraps the admin account from ADMIN_EMAIL / ADMIN_PASSWORD.
// Registration never produces admins, so this is the only way one comes to
// exist. A no-op when the variables are unset or the account already exists.
func SeedAdmin() {
	email := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing models.User
	if DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("✅ Admin user %s created", email)
}
