package admin_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportsOnEmptyWindow(t *testing.T) {
	app := testutil.SetupApp(t)
	adminToken, _ := testutil.CreateAdmin(t, app, "admin@example.com")

	res, body := testutil.Request(t, app, "GET", "/admin/reports?period=week", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["totalServices"])
	assert.Equal(t, "week", data["period"])

	// Empty aggregates serialize as empty arrays, never null.
	bookingStats, ok := data["bookingStats"].([]interface{})
	require.True(t, ok)
	assert.Len(t, bookingStats, 0)
	revenue, ok := data["revenueOverTime"].([]interface{})
	require.True(t, ok)
	assert.Len(t, revenue, 0)

	// The lone admin still shows up in the role counts.
	usersByRole := data["usersByRole"].([]interface{})
	require.Len(t, usersByRole, 1)
	entry := usersByRole[0].(map[string]interface{})
	assert.Equal(t, "admin", entry["role"])
	assert.Equal(t, 1.0, entry["count"])
}

func TestReportsAggregateBookingsAndRevenue(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	adminToken, _ := testutil.CreateAdmin(t, app, "admin@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)

	// One completed, one still pending.
	completed := testutil.CreateBooking(t, app, customerToken, serviceID)
	testutil.CreateBooking(t, app, customerToken, serviceID)
	for _, status := range []string{"accepted", "completed"} {
		res, _ := testutil.Request(t, app, "PUT",
			fmt.Sprintf("/provider/bookings/%d/status", completed), providerToken,
			fiber.Map{"status": status})
		require.Equal(t, http.StatusOK, res.StatusCode)
	}

	res, body := testutil.Request(t, app, "GET", "/admin/reports", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	data := body["data"].(map[string]interface{})

	assert.Equal(t, 1.0, data["totalServices"])
	assert.Equal(t, "month", data["period"])

	statsByStatus := map[string]map[string]interface{}{}
	for _, raw := range data["bookingStats"].([]interface{}) {
		entry := raw.(map[string]interface{})
		statsByStatus[entry["status"].(string)] = entry
	}
	require.Contains(t, statsByStatus, "completed")
	require.Contains(t, statsByStatus, "pending")
	assert.Equal(t, 1.0, statsByStatus["completed"]["count"])
	assert.Equal(t, 90.0, statsByStatus["completed"]["total_amount"])
	assert.Equal(t, 90.0, statsByStatus["pending"]["total_amount"])

	// Only completed bookings count as revenue.
	revenue := data["revenueOverTime"].([]interface{})
	require.Len(t, revenue, 1)
	day := revenue[0].(map[string]interface{})
	assert.Equal(t, 90.0, day["revenue"])
	assert.Equal(t, 1.0, day["bookings_count"])
	assert.NotEmpty(t, day["date"])

	roles := map[string]float64{}
	for _, raw := range data["usersByRole"].([]interface{}) {
		entry := raw.(map[string]interface{})
		roles[entry["role"].(string)] = entry["count"].(float64)
	}
	assert.Equal(t, float64(1), roles["customer"])
	assert.Equal(t, float64(1), roles["provider"])
	assert.Equal(t, float64(1), roles["admin"])
}
