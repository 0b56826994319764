package customer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
	"gorm.io/gorm"
)

type ReviewInput struct {
	BookingID uint    `json:"booking_id"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

// CreateReview rates a completed booking and refreshes the provider's
// aggregate rating.
func CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(ReviewInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Cannot parse JSON")
	}
	if input.BookingID == 0 || input.Rating == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Missing required fields")
	}

	var booking models.Booking
	if err := db.DB.Where("customer_id = ?", userID).
		First(&booking, input.BookingID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Booking not found")
	}
	if booking.Status != models.StatusCompleted {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Only completed bookings can be reviewed")
	}

	var existing int64
	db.DB.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&existing)
	if existing > 0 {
		return utils.Fail(c, fiber.StatusConflict, utils.ErrConflict, "You have already reviewed this booking")
	}

	review := models.Review{
		Rating:     input.Rating,
		Comment:    input.Comment,
		CustomerID: userID,
		ProviderID: booking.ProviderID,
		ServiceID:  booking.ServiceID,
		BookingID:  booking.ID,
	}
	if err := db.DB.Create(&review).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to create review")
	}

	refreshProviderRating(db.DB, booking.ProviderID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    review,
	})
}

// GetProviderReviews lists reviews for a provider, newest first.
func GetProviderReviews(c *fiber.Ctx) error {
	providerID := c.Params("id")
	page, limit, offset := utils.PageParams(c)

	var total int64
	db.DB.Model(&models.Review{}).Where("provider_id = ?", providerID).Count(&total)

	var reviews []models.Review
	if err := db.DB.
		Preload("Customer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, created_at")
		}).
		Where("provider_id = ?", providerID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to fetch reviews")
	}

	return utils.ListResponse(c, reviews, page, limit, total)
}

// refreshProviderRating recomputes the aggregate rating and review count on
// the provider's profile.
func refreshProviderRating(tx *gorm.DB, providerID uint) {
	var agg struct {
		AvgRating float64
		Total     int64
	}
	tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg_rating, COUNT(*) as total").
		Where("provider_id = ?", providerID).
		Scan(&agg)

	tx.Model(&models.ProviderProfile{}).
		Where("provider_id = ?", providerID).
		Updates(map[string]interface{}{
			"rating":        agg.AvgRating,
			"total_reviews": agg.Total,
		})
}
