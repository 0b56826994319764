package provider

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

// GetBookings lists the provider's own bookings, optionally filtered by
// status.
func GetBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page, limit, offset := utils.PageParams(c)

	query := db.DB.Model(&models.Booking{}).Where("provider_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.
		Preload("Service").
		Preload("Customer").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to fetch bookings")
	}

	for i := range bookings {
		bookings[i].Customer.Password = ""
	}

	return utils.ListResponse(c, bookings, page, limit, total)
}

// UpdateBookingStatus moves one of the provider's bookings through the
// lifecycle: accept or reject a pending booking, complete or cancel an
// accepted one. The write is conditioned on the status the provider saw; a
// concurrent transition on the same booking makes this one fail rather than
// overwrite.
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Cannot parse JSON")
	}

	newStatus := models.BookingStatus(input.Status)
	switch newStatus {
	case models.StatusAccepted, models.StatusRejected, models.StatusCompleted, models.StatusCancelled:
	default:
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation,
			"Status must be 'accepted', 'rejected', 'completed' or 'cancelled'")
	}

	var booking models.Booking
	if err := db.DB.Preload("Service").
		Where("provider_id = ?", userID).
		First(&booking, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Booking not found")
	}

	// Withdrawing a pending booking is the customer's move; the provider's
	// answer to a pending booking is accept or reject.
	if newStatus == models.StatusCancelled && booking.Status == models.StatusPending {
		return utils.Fail(c, fiber.StatusForbidden, utils.ErrForbidden,
			"Pending bookings are rejected, not cancelled, by the provider")
	}

	if err := booking.Transition(db.DB, newStatus); err != nil {
		var invalid *models.InvalidTransitionError
		if errors.As(err, &invalid) {
			return utils.Fail(c, fiber.StatusConflict, utils.ErrInvalidTransition, invalid.Error())
		}
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to update booking status")
	}

	var customerUser models.User
	db.DB.First(&customerUser, booking.CustomerID)
	utils.NotifyUser(db.DB, customerUser, &booking.ID, models.NotificationBookingUpdate,
		fmt.Sprintf("Booking %s", newStatus),
		fmt.Sprintf("Your booking for %s on %s is now %s.",
			booking.Service.Title, booking.ScheduledDate.Format("2006-01-02"), newStatus))

	return c.JSON(fiber.Map{
		"success": true,
		"data":    booking,
		"message": "Booking status updated successfully",
	})
}

// GetEarnings sums the provider's completed bookings over a trailing window.
func GetEarnings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	period := c.Query("period", "month")
	now := time.Now()
	var startDate time.Time
	switch period {
	case "day":
		startDate = now.AddDate(0, 0, -1)
	case "week":
		startDate = now.AddDate(0, 0, -7)
	case "month":
		startDate = now.AddDate(0, -1, 0)
	case "year":
		startDate = now.AddDate(-1, 0, 0)
	default:
		period = "month"
		startDate = now.AddDate(0, -1, 0)
	}

	var result struct {
		TotalEarnings float64
		TotalBookings int64
	}
	db.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(amount), 0) as total_earnings, COUNT(*) as total_bookings").
		Where("provider_id = ? AND status = ?", userID, models.StatusCompleted).
		Where("created_at BETWEEN ? AND ?", startDate, now).
		Scan(&result)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"totalEarnings": result.TotalEarnings,
			"totalBookings": result.TotalBookings,
			"period":        period,
		},
	})
}
