package customer_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingSnapshotsPrice(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)

	res, body := testutil.Request(t, app, "POST", "/customer/bookings", customerToken, fiber.Map{
		"service_id":     serviceID,
		"scheduled_date": "2026-09-15",
		"preferred_time": "10:00",
		"address":        "12 Main Street",
		"description":    "leaking tap",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 90.0, data["amount"])
	assert.Equal(t, "normal", data["urgency"])
	bookingID := uint(data["ID"].(float64))

	// The provider later reprices the offering; the booking keeps its snapshot.
	res, _ = testutil.Request(t, app, "PUT", fmt.Sprintf("/provider/services/%d", serviceID), providerToken, fiber.Map{
		"price": 150.0,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = testutil.Request(t, app, "GET", fmt.Sprintf("/customer/bookings/%d", bookingID), customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, 90.0, data["amount"])

	var service models.Service
	require.NoError(t, db.DB.First(&service, serviceID).Error)
	assert.Equal(t, int64(1), service.TotalBookings)
}

func TestCreateBookingNotifiesBothParties(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)

	testutil.CreateBooking(t, app, customerToken, serviceID)

	res, body := testutil.Request(t, app, "GET", "/notifications/", providerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	provNotifs := body["data"].([]interface{})
	require.Len(t, provNotifs, 1)
	assert.Equal(t, "new_booking", provNotifs[0].(map[string]interface{})["type"])

	res, body = testutil.Request(t, app, "GET", "/notifications/", customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	custNotifs := body["data"].([]interface{})
	require.Len(t, custNotifs, 1)
	assert.Equal(t, "booking_confirmation", custNotifs[0].(map[string]interface{})["type"])
}

func TestCreateBookingValidation(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)

	res, body := testutil.Request(t, app, "POST", "/customer/bookings", customerToken, fiber.Map{
		"service_id":     serviceID,
		"scheduled_date": "15-09-2026",
		"address":        "12 Main Street",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "validation_error", body["error"])

	res, body = testutil.Request(t, app, "POST", "/customer/bookings", customerToken, fiber.Map{
		"service_id":     serviceID,
		"scheduled_date": "2026-09-15",
		"address":        "12 Main Street",
		"urgency":        "whenever",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "validation_error", body["error"])

	res, body = testutil.Request(t, app, "POST", "/customer/bookings", customerToken, fiber.Map{
		"service_id":     99999,
		"scheduled_date": "2026-09-15",
		"address":        "12 Main Street",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "not_found", body["error"])
}

func TestCreateBookingRejectsInactiveService(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)

	res, _ := testutil.Request(t, app, "PUT", fmt.Sprintf("/provider/services/%d", serviceID), providerToken, fiber.Map{
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := testutil.Request(t, app, "POST", "/customer/bookings", customerToken, fiber.Map{
		"service_id":     serviceID,
		"scheduled_date": "2026-09-15",
		"address":        "12 Main Street",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "service_unavailable", body["error"])
}

func TestGetBookingsIsOwnerScoped(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	otherToken, _ := testutil.RegisterAndLogin(t, app, "customer", "other@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)
	bookingID := testutil.CreateBooking(t, app, customerToken, serviceID)

	res, body := testutil.Request(t, app, "GET", "/customer/bookings", customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, 1.0, pagination["totalCount"])

	// A different customer sees neither the list entry nor the detail.
	res, body = testutil.Request(t, app, "GET", "/customer/bookings", otherToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 0)

	res, body = testutil.Request(t, app, "GET", fmt.Sprintf("/customer/bookings/%d", bookingID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "not_found", body["error"])
}

func TestCancelBooking(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)
	bookingID := testutil.CreateBooking(t, app, customerToken, serviceID)

	res, body := testutil.Request(t, app, "PUT", fmt.Sprintf("/customer/bookings/%d/cancel", bookingID), customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "cancelled", body["data"].(map[string]interface{})["status"])

	// Cancelling again hits a terminal state.
	res, body = testutil.Request(t, app, "PUT", fmt.Sprintf("/customer/bookings/%d/cancel", bookingID), customerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "invalid_transition", body["error"])
}

func TestProviderRoleCannotUseCustomerBookingRoutes(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")

	res, body := testutil.Request(t, app, "GET", "/customer/bookings", providerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, "forbidden", body["error"])
}
