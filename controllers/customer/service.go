package customer

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

// GetServices lists bookable offerings, restricted to active ones. Optional
// filters: category, min_price, max_price and a free-text search over
// title + description.
func GetServices(c *fiber.Ctx) error {
	page, limit, offset := utils.PageParams(c)

	query := db.DB.Model(&models.Service{}).Where("is_active = ?", true)

	if category := c.Query("category"); category != "" {
		if !models.ServiceCategory(category).IsValid() {
			return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Unknown service category")
		}
		query = query.Where("category = ?", category)
	}
	if minPrice := c.QueryFloat("min_price", 0); minPrice > 0 {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice := c.QueryFloat("max_price", 0); maxPrice > 0 {
		query = query.Where("price <= ?", maxPrice)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	query.Count(&total)

	var services []models.Service
	if err := query.
		Preload("Provider").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&services).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to fetch services")
	}

	for i := range services {
		services[i].Provider.Password = ""
	}

	return utils.ListResponse(c, services, page, limit, total)
}

// GetService returns one active offering with its provider.
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.Preload("Provider").
		Where("is_active = ?", true).
		First(&service, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Service not found")
	}

	service.Provider.Password = ""

	return c.JSON(fiber.Map{
		"success": true,
		"data":    service,
	})
}
