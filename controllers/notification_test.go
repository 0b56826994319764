package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadCountAndMarkAsRead(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)
	testutil.CreateBooking(t, app, customerToken, serviceID)

	res, body := testutil.Request(t, app, "GET", "/notifications/unread-count", customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 1.0, body["unread_count"])

	res, body = testutil.Request(t, app, "GET", "/notifications/", customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	notifID := uint(body["data"].([]interface{})[0].(map[string]interface{})["id"].(float64))

	res, body = testutil.Request(t, app, "PUT", fmt.Sprintf("/notifications/%d/read", notifID), customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]interface{})["is_read"])

	res, body = testutil.Request(t, app, "GET", "/notifications/unread-count", customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 0.0, body["unread_count"])
}

func TestNotificationsAreRecipientScoped(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	otherToken, _ := testutil.RegisterAndLogin(t, app, "customer", "other@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)
	testutil.CreateBooking(t, app, customerToken, serviceID)

	// The uninvolved customer sees nothing and cannot read the others' rows.
	res, body := testutil.Request(t, app, "GET", "/notifications/", otherToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 0)

	res, body = testutil.Request(t, app, "GET", "/notifications/", customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	notifID := uint(body["data"].([]interface{})[0].(map[string]interface{})["id"].(float64))

	res, body = testutil.Request(t, app, "PUT", fmt.Sprintf("/notifications/%d/read", notifID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "not_found", body["error"])
}

func TestRoleWideBroadcasts(t *testing.T) {
	app := testutil.SetupApp(t)
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")

	// RecipientID 0 addresses every user of the role; "all" reaches everyone.
	require.NoError(t, db.DB.Create(&models.Notification{
		RecipientRole: models.RoleCustomer,
		Type:          models.NotificationBookingUpdate,
		Title:         "Scheduled maintenance",
		Message:       "Bookings will pause briefly tonight.",
	}).Error)
	require.NoError(t, db.DB.Create(&models.Notification{
		RecipientRole: models.RecipientAll,
		Type:          models.NotificationBookingUpdate,
		Title:         "New terms of service",
		Message:       "Please review the updated terms.",
	}).Error)

	res, body := testutil.Request(t, app, "GET", "/notifications/", customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 2)

	res, body = testutil.Request(t, app, "GET", "/notifications/", providerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)
}

func TestMarkAllAsReadIsIdempotent(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)
	testutil.CreateBooking(t, app, customerToken, serviceID)
	testutil.CreateBooking(t, app, customerToken, serviceID)

	for i := 0; i < 2; i++ {
		res, body := testutil.Request(t, app, "PUT", "/notifications/read-all", customerToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, true, body["success"])

		res, body = testutil.Request(t, app, "GET", "/notifications/unread-count", customerToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, 0.0, body["unread_count"])
	}

	// The provider's notifications are untouched.
	res, body := testutil.Request(t, app, "GET", "/notifications/unread-count", providerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 2.0, body["unread_count"])
}

func TestClearAllDeletesOnlyOwnScope(t *testing.T) {
	app := testutil.SetupApp(t)
	providerToken, _ := testutil.RegisterAndLogin(t, app, "provider", "prov@example.com")
	customerToken, _ := testutil.RegisterAndLogin(t, app, "customer", "cust@example.com")
	serviceID := testutil.CreateService(t, app, providerToken, "Tap repair", 90)
	testutil.CreateBooking(t, app, customerToken, serviceID)

	res, _ := testutil.Request(t, app, "DELETE", "/notifications/", customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := testutil.Request(t, app, "GET", "/notifications/", customerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 0)

	res, body = testutil.Request(t, app, "GET", "/notifications/", providerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)
}
