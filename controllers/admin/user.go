package admin

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

// GetUsers lists users, optionally filtered by role.
func GetUsers(c *fiber.Ctx) error {
	page, limit, offset := utils.PageParams(c)

	query := db.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		if !models.IsValidRole(role) {
			return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Unknown role")
		}
		query = query.Where("role = ?", role)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to fetch users")
	}

	for i := range users {
		users[i].Password = ""
	}

	return utils.ListResponse(c, users, page, limit, total)
}

// UpdateUserStatus toggles a user's active flag. Roles are never changed
// here; an inactive user keeps its role and history but cannot authenticate
// past the role gate.
func UpdateUserStatus(c *fiber.Ctx) error {
	var input struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&input); err != nil || input.IsActive == nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "is_active is required")
	}

	var user models.User
	if err := db.DB.First(&user, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "User not found")
	}

	if err := db.DB.Model(&user).Update("is_active", *input.IsActive).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to update user status")
	}
	user.Password = ""

	verb := "deactivated"
	if *input.IsActive {
		verb = "activated"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
		"message": fmt.Sprintf("User %s successfully", verb),
	})
}
