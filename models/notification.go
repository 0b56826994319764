package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification types surfaced to clients.
const (
	NotificationNewBooking          = "new_booking"
	NotificationBookingConfirmation = "booking_confirmation"
	NotificationBookingUpdate       = "booking_update"
	NotificationBookingReminder     = "booking_reminder"
)

// RecipientAll addresses a notification to every user regardless of role.
const RecipientAll = "all"

// Notification is an append-only, best-effort record keyed by a recipient
// selector: a role name (with RecipientID 0 meaning every user of that role)
// or a specific user. It carries no referential coupling to the booking it
// may reference; cancelling a booking does not retract its notifications.
type Notification struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RecipientRole string    `json:"recipient_role"`
	RecipientID   uint      `json:"recipient_id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	BookingID     *uint     `json:"booking_id,omitempty"`
	IsRead        bool      `json:"is_read" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
}

// NotificationsFor scopes a query to the notifications a user may see: rows
// addressed to them directly, plus role-wide and "all" broadcasts.
func NotificationsFor(role string, userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"recipient_id = ? OR (recipient_id = 0 AND recipient_role IN ?)",
			userID, []string{role, RecipientAll},
		)
	}
}
