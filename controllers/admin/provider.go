package admin

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

// GetProviders lists provider accounts, optionally filtered by approval.
func GetProviders(c *fiber.Ctx) error {
	page, limit, offset := utils.PageParams(c)

	query := db.DB.Model(&models.User{}).Where("role = ?", models.RoleProvider)
	if approved := c.Query("approved"); approved != "" {
		query = query.
			Joins("JOIN provider_profiles ON provider_profiles.provider_id = users.id").
			Where("provider_profiles.is_approved = ?", approved == "true")
	}

	var total int64
	query.Count(&total)

	var providers []models.User
	if err := query.
		Preload("ProviderProfile").
		Order("users.created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&providers).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to fetch providers")
	}

	for i := range providers {
		providers[i].Password = ""
	}

	return utils.ListResponse(c, providers, page, limit, total)
}

// ApproveProvider toggles a provider's approval flag. The role itself is
// immutable; approval is the only provider attribute moderation touches.
func ApproveProvider(c *fiber.Ctx) error {
	var input struct {
		IsApproved *bool `json:"is_approved"`
	}
	if err := c.BodyParser(&input); err != nil || input.IsApproved == nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "is_approved is required")
	}

	var provider models.User
	if err := db.DB.
		Where("role = ?", models.RoleProvider).
		First(&provider, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Provider not found")
	}

	var profile models.ProviderProfile
	if db.DB.Where("provider_id = ?", provider.ID).First(&profile).RowsAffected == 0 {
		profile = models.ProviderProfile{ProviderID: provider.ID}
		if err := db.DB.Create(&profile).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to create provider profile")
		}
	}

	if err := db.DB.Model(&profile).Update("is_approved", *input.IsApproved).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to update provider approval")
	}

	provider.Password = ""
	provider.ProviderProfile = &profile

	verb := "disapproved"
	if *input.IsApproved {
		verb = "approved"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    provider,
		"message": fmt.Sprintf("Provider %s successfully", verb),
	})
}
