// Package testutil wires a fully routed app against a throwaway in-memory
// database for request-level tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/routes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupApp opens a fresh in-memory database named after the test, migrates
// the schema and returns an app with every route group mounted.
func SetupApp(t *testing.T) *fiber.App {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = gdb.AutoMigrate(
		&models.User{},
		&models.ProviderProfile{},
		&models.Service{},
		&models.Booking{},
		&models.Notification{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	db.DB = gdb

	app := fiber.New()
	routes.SetupAuthRoutes(app)
	routes.SetupCustomerRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupNotificationRoutes(app)
	return app
}

// Request issues a JSON request against the app and decodes the response body
// into a generic map.
func Request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}

	decoded := map[string]interface{}{}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		t.Fatalf("Failed to decode response of %s %s: %v", method, path, err)
	}
	return res, decoded
}

// RegisterAndLogin creates a user through the public endpoints and returns a
// bearer token plus the user ID.
func RegisterAndLogin(t *testing.T, app *fiber.App, role, email string) (string, uint) {
	t.Helper()

	res, body := Request(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":     strings.Split(email, "@")[0],
		"email":    email,
		"password": "secret123",
		"phone":    "5550100",
		"role":     role,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("Failed to register %s: %v", email, body)
	}
	userID := uint(body["data"].(map[string]interface{})["id"].(float64))

	res, body = Request(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    email,
		"password": "secret123",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Failed to login %s: %v", email, body)
	}
	return body["token"].(string), userID
}

// CreateAdmin inserts an admin directly (registration never mints admins)
// and returns a bearer token plus the user ID.
func CreateAdmin(t *testing.T, app *fiber.App, email string) (string, uint) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := models.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		Phone:    "5550199",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.DB.Create(&admin).Error; err != nil {
		t.Fatalf("Failed to create admin: %v", err)
	}

	res, body := Request(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    email,
		"password": "secret123",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Failed to login admin: %v", body)
	}
	return body["token"].(string), admin.ID
}

// CreateService creates an offering through the provider API and returns its
// ID.
func CreateService(t *testing.T, app *fiber.App, providerToken string, title string, price float64) uint {
	t.Helper()

	res, body := Request(t, app, "POST", "/provider/services", providerToken, fiber.Map{
		"title":       title,
		"description": "test offering",
		"category":    "plumbing",
		"price":       price,
		"duration":    2.0,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("Failed to create service: %v", body)
	}
	return uint(body["data"].(map[string]interface{})["ID"].(float64))
}

// CreateBooking books a service through the customer API and returns the
// booking ID.
func CreateBooking(t *testing.T, app *fiber.App, customerToken string, serviceID uint) uint {
	t.Helper()

	res, body := Request(t, app, "POST", "/customer/bookings", customerToken, fiber.Map{
		"service_id":     serviceID,
		"scheduled_date": "2026-09-15",
		"preferred_time": "10:00",
		"address":        "12 Main Street",
		"description":    "leaking tap",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("Failed to create booking: %v", body)
	}
	return uint(body["data"].(map[string]interface{})["ID"].(float64))
}
