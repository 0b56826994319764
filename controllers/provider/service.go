package provider

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

type ServiceInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Duration    *float64 `json:"duration"`
	IsActive    *bool    `json:"is_active"`
}

// GetServices lists the provider's own offerings.
func GetServices(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page, limit, offset := utils.PageParams(c)

	var total int64
	db.DB.Model(&models.Service{}).Where("provider_id = ?", userID).Count(&total)

	var services []models.Service
	if err := db.DB.
		Where("provider_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&services).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to fetch services")
	}

	return utils.ListResponse(c, services, page, limit, total)
}

// CreateService adds an offering owned by the calling provider.
func CreateService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Cannot parse JSON")
	}

	if input.Title == "" || input.Description == "" {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Missing required fields")
	}
	if !models.ServiceCategory(input.Category).IsValid() {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Unknown service category")
	}
	if input.Price == nil || *input.Price <= 0 {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Price must be a positive number")
	}
	if input.Duration == nil || *input.Duration <= 0 {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Duration must be a positive number of hours")
	}

	service := models.Service{
		ProviderID:  userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    models.ServiceCategory(input.Category),
		Price:       *input.Price,
		Duration:    *input.Duration,
		IsActive:    true,
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to create service")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    service,
		"message": "Service added successfully",
	})
}

// UpdateService edits one of the provider's own offerings. Offerings owned by
// someone else look exactly like missing ones.
func UpdateService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var service models.Service
	if err := db.DB.
		Where("provider_id = ?", userID).
		First(&service, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Service not found")
	}

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Cannot parse JSON")
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Category != "" {
		if !models.ServiceCategory(input.Category).IsValid() {
			return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Unknown service category")
		}
		updates["category"] = input.Category
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Price must be a positive number")
		}
		updates["price"] = *input.Price
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Duration must be a positive number of hours")
		}
		updates["duration"] = *input.Duration
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&service).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to update service")
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    service,
		"message": "Service updated successfully",
	})
}

// DeleteService removes one of the provider's own offerings. Existing
// bookings keep their snapshot of the price and survive the delete.
func DeleteService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var service models.Service
	if err := db.DB.
		Where("provider_id = ?", userID).
		First(&service, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Service not found")
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to delete service")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service deleted successfully",
	})
}
