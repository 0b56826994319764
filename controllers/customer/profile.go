package customer

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

// GetProfile returns the caller's profile.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.Preload("ProviderProfile").First(&user, userID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "User not found")
	}
	user.Password = ""

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

// UpdateProfile updates the caller's contact details. Email and role are
// fixed at registration and cannot be changed here.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type ProfileInput struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Cannot parse JSON")
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "User not found")
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}
	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to update profile")
		}
	}
	user.Password = ""

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

// UpdateProfilePicture uploads a new profile picture and stores its URL.
func UpdateProfilePicture(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("profile_picture")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.ErrValidation, "Failed to get profile picture")
	}

	f, err := file.Open()
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to open profile picture")
	}
	defer f.Close()

	publicID := fmt.Sprintf("user_%d_%d", userID, time.Now().Unix())
	secureURL, err := utils.UploadToCloudinary(f, publicID, "profile_pictures")
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to upload profile picture")
	}

	if err := db.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_image", secureURL).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to update profile picture")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"profile_image": secureURL},
	})
}
