package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

type BookingUrgency string

const (
	UrgencyNormal    BookingUrgency = "normal"
	UrgencyUrgent    BookingUrgency = "urgent"
	UrgencyEmergency BookingUrgency = "emergency"
)

// IsValid reports whether the urgency tier is known. Urgency is informational
// only and never alters lifecycle behavior.
func (u BookingUrgency) IsValid() bool {
	return u == UrgencyNormal || u == UrgencyUrgent || u == UrgencyEmergency
}

// bookingTransitions is the directed graph of permitted status changes.
// Rejected, completed and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether the edge from s to next is in the graph.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InvalidTransitionError is returned when a status change is not permitted or
// when the stored status moved before the write could be applied.
type InvalidTransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Booking is the audit record of an engagement. Bookings are never deleted,
// only status-mutated. Amount is the offering's price snapshotted at creation
// and does not follow later price changes.
type Booking struct {
	gorm.Model
	CustomerID    uint           `json:"customer_id"`
	Customer      User           `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID    uint           `json:"provider_id"`
	Provider      User           `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID     uint           `json:"service_id"`
	Service       Service        `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	ScheduledDate time.Time      `json:"scheduled_date"`
	PreferredTime string         `json:"preferred_time"`
	Address       string         `json:"address"`
	Description   string         `json:"description"`
	Urgency       BookingUrgency `json:"urgency"`
	Amount        float64        `json:"amount"`
	Status        BookingStatus  `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.Urgency == "" {
		b.Urgency = UrgencyNormal
	}
	return nil
}

// Transition moves the booking to next with a conditional single-row update
// gated on the status the caller read. A concurrent transition that moved the
// row first leaves this write with zero affected rows, which is surfaced as an
// InvalidTransitionError rather than silently overwritten.
func (b *Booking) Transition(tx *gorm.DB, next BookingStatus) error {
	if !b.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{From: b.Status, To: next}
	}

	res := tx.Model(&Booking{}).
		Where("id = ? AND status = ?", b.ID, b.Status).
		Update("status", next)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &InvalidTransitionError{From: b.Status, To: next}
	}

	b.Status = next
	return nil
}
