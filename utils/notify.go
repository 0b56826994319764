package utils

import (
	"fmt"
	"log"

	"github.com/meinhoongagan/home-services-app/models"
	"gorm.io/gorm"
)

// NotifyUser appends a notification addressed to a single user and mirrors it
// over email. The booking write that triggered the event is authoritative and
// already committed; failures here are logged and swallowed, never surfaced
// to the caller.
func NotifyUser(tx *gorm.DB, user models.User, bookingID *uint, notifType, title, message string) {
	notification := models.Notification{
		RecipientRole: user.Role,
		RecipientID:   user.ID,
		Type:          notifType,
		Title:         title,
		Message:       message,
		BookingID:     bookingID,
	}
	if err := tx.Create(&notification).Error; err != nil {
		log.Printf("Failed to append %s notification for user %d: %v", notifType, user.ID, err)
	}

	if user.Email == "" {
		return
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<p>Best regards,</p>
		<p>The HomeServe Team</p>
	`, user.Name, message)
	if err := SendEmail(user.Email, title, body); err != nil {
		log.Printf("Failed to send %s email to %s: %v", notifType, user.Email, err)
	}
}
