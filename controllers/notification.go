package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

// GetNotifications lists the caller's notifications, newest first.
func GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)
	page, limit, offset := utils.PageParams(c)

	var total int64
	db.DB.Model(&models.Notification{}).
		Scopes(models.NotificationsFor(role, userID)).
		Count(&total)

	var notifications []models.Notification
	if err := db.DB.
		Scopes(models.NotificationsFor(role, userID)).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to fetch notifications")
	}

	return utils.ListResponse(c, notifications, page, limit, total)
}

// GetUnreadCount returns the caller's number of unread notifications.
func GetUnreadCount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)

	var count int64
	db.DB.Model(&models.Notification{}).
		Scopes(models.NotificationsFor(role, userID)).
		Where("is_read = ?", false).
		Count(&count)

	return c.JSON(fiber.Map{
		"success":      true,
		"unread_count": count,
	})
}

// MarkAsRead flips the read flag on one of the caller's notifications.
func MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)

	var notification models.Notification
	if err := db.DB.
		Scopes(models.NotificationsFor(role, userID)).
		First(&notification, c.Params("id")).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.ErrNotFound, "Notification not found")
	}

	if err := db.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to mark notification as read")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notification,
	})
}

// MarkAllAsRead marks everything in the caller's scope read. Calling it again
// is a no-op.
func MarkAllAsRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)

	if err := db.DB.Model(&models.Notification{}).
		Scopes(models.NotificationsFor(role, userID)).
		Where("is_read = ?", false).
		Update("is_read", true).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to mark notifications as read")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All notifications marked as read",
	})
}

// ClearAll deletes everything in the caller's scope.
func ClearAll(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)

	if err := db.DB.
		Scopes(models.NotificationsFor(role, userID)).
		Delete(&models.Notification{}).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.ErrStorage, "Failed to clear notifications")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All notifications cleared",
	})
}
