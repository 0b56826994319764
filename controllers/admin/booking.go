package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

// GetBookings lists every booking, optionally filtered by status. Admin
// access is read-only: there is no admin transition path through the
// lifecycle engine.
func GetBookings(c *fiber.Ctx) error {
	page, limit, offset := utils.PageParams(c)

	query := db.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.
		Preload("Customer").
		Preload("Provider").
		Preload("Service").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to fetch bookings")
	}

	for i := range bookings {
		bookings[i].Customer.Password = ""
		bookings[i].Provider.Password = ""
	}

	return utils.ListResponse(c, bookings, page, limit, total)
}
