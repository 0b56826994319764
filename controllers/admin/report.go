package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type BookingStat struct {
	Status      string  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type DailyRevenue struct {
	Date          string  `json:"date"`
	Revenue       float64 `json:"revenue"`
	BookingsCount int64   `json:"bookings_count"`
}

// GetReports returns the admin rollups for a trailing window: users grouped
// by role, total offerings, bookings grouped by status with summed amounts,
// and completed revenue bucketed by day. All of it is side-effect-free and an
// empty window yields zero-valued aggregates.
func GetReports(c *fiber.Ctx) error {
	period := c.Query("period", "month")
	now := time.Now()
	var startDate time.Time
	switch period {
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

	usersByRole := make([]RoleCount, 0)
	if err := db.DB.Model(&models.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&usersByRole).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to generate reports")
	}

	var totalServices int64
	db.DB.Model(&models.Service{}).Count(&totalServices)

	bookingStats := make([]BookingStat, 0)
	if err := db.DB.Model(&models.Booking{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(amount), 0) as total_amount").
		Where("created_at BETWEEN ? AND ?", startDate, now).
		Group("status").
		Scan(&bookingStats).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to generate reports")
	}

	revenueOverTime := make([]DailyRevenue, 0)
	if err := db.DB.Model(&models.Booking{}).
		Select("CAST(DATE(created_at) AS TEXT) as date, COALESCE(SUM(amount), 0) as revenue, COUNT(*) as bookings_count").
		Where("status = ?", models.StatusCompleted).
		Where("created_at BETWEEN ? AND ?", startDate, now).
		Group("DATE(created_at)").
		Order("date asc").
		Scan(&revenueOverTime).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to generate reports")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"usersByRole":     usersByRole,
			"totalServices":   totalServices,
			"bookingStats":    bookingStats,
			"revenueOverTime": revenueOverTime,
			"period":          period,
		},
	})
}
