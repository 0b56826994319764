package customer

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
	"gorm.io/gorm"
)

type BookingInput struct {
	ServiceID     uint   `json:"service_id"`
	ScheduledDate string `json:"scheduled_date"` // "2006-01-02"
	PreferredTime string `json:"preferred_time"`
	Address       string `json:"address"`
	Description   string `json:"description"`
	Urgency       string `json:"urgency"`
}

// CreateBooking books an offering for the authenticated customer. The
// offering's current price is snapshotted into the booking amount; later
// price changes never touch existing bookings.
func CreateBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Cannot parse JSON")
	}

	if input.ServiceID == 0 || input.Address == "" || input.ScheduledDate == "" {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Missing required fields")
	}

	scheduledDate, err := time.Parse("2006-01-02", input.ScheduledDate)
	if err != nil {
		if scheduledDate, err = time.Parse(time.RFC3339, input.ScheduledDate); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Invalid scheduled date. Use YYYY-MM-DD.")
		}
	}

	urgency := models.BookingUrgency(input.Urgency)
	if input.Urgency == "" {
		urgency = models.UrgencyNormal
	}
	if !urgency.IsValid() {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Urgency must be normal, urgent or emergency")
	}

	var service models.Service
	if err := db.DB.First(&service, input.ServiceID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Service not found")
	}
	if !service.IsActive {
		return utils.Fail(c, fiber.StatusConflict, utils.ErrServiceUnavailable, "This service is not currently available for booking")
	}

	booking := models.Booking{
		CustomerID:    userID,
		ProviderID:    service.ProviderID,
		ServiceID:     service.ID,
		ScheduledDate: scheduledDate,
		PreferredTime: input.PreferredTime,
		Address:       input.Address,
		Description:   input.Description,
		Urgency:       urgency,
		Amount:        service.Price, // price snapshot at booking time
		Status:        models.StatusPending,
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to create booking")
	}

	db.DB.Model(&service).Update("total_bookings", gorm.Expr("total_bookings + 1"))

	// Notifications ride outside the booking write; their failure never fails
	// the booking.
	var customerUser, providerUser models.User
	db.DB.First(&customerUser, booking.CustomerID)
	db.DB.First(&providerUser, booking.ProviderID)

	utils.NotifyUser(db.DB, providerUser, &booking.ID, models.NotificationNewBooking,
		"New booking request",
		fmt.Sprintf("%s booked %s for %s.", customerUser.Name, service.Title, booking.ScheduledDate.Format("2006-01-02")))
	utils.NotifyUser(db.DB, customerUser, &booking.ID, models.NotificationBookingConfirmation,
		"Booking received",
		fmt.Sprintf("Your booking for %s on %s is pending confirmation.", service.Title, booking.ScheduledDate.Format("2006-01-02")))

	booking.Service = service
	booking.Service.Provider.Password = ""

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    booking,
	})
}

// GetBookings lists the customer's own bookings, optionally filtered by status.
func GetBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page, limit, offset := utils.PageParams(c)

	query := db.DB.Model(&models.Booking{}).Where("customer_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.
		Preload("Service").
		Preload("Provider").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to fetch bookings")
	}

	for i := range bookings {
		bookings[i].Provider.Password = ""
	}

	return utils.ListResponse(c, bookings, page, limit, total)
}

// GetBooking returns one of the customer's bookings.
func GetBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var booking models.Booking
	if err := db.DB.
		Preload("Service").
		Preload("Provider").
		Where("customer_id = ?", userID).
		First(&booking, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Booking not found")
	}

	booking.Provider.Password = ""

	return c.JSON(fiber.Map{
		"success": true,
		"data":    booking,
	})
}

// CancelBooking withdraws one of the customer's own bookings. Permitted from
// pending or accepted; terminal bookings stay untouched.
func CancelBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var booking models.Booking
	if err := db.DB.Preload("Service").
		Where("customer_id = ?", userID).
		First(&booking, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Booking not found")
	}

	if err := booking.Transition(db.DB, models.StatusCancelled); err != nil {
		var invalid *models.InvalidTransitionError
		if errors.As(err, &invalid) {
			return utils.Fail(c, fiber.StatusConflict, utils.ErrInvalidTransition,
				fmt.Sprintf("Cannot cancel a %s booking", booking.Status))
		}
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to cancel booking")
	}

	var providerUser models.User
	db.DB.First(&providerUser, booking.ProviderID)
	utils.NotifyUser(db.DB, providerUser, &booking.ID, models.NotificationBookingUpdate,
		"Booking cancelled",
		fmt.Sprintf("The booking for %s on %s was cancelled by the customer.",
			booking.Service.Title, booking.ScheduledDate.Format("2006-01-02")))

	return c.JSON(fiber.Map{
		"success": true,
		"data":    booking,
		"message": "Booking cancelled successfully",
	})
}
