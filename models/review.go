package models

import (
	"gorm.io/gorm"
)

// Review rates a completed booking. Each booking can be reviewed once; every
// accepted review recomputes the provider's aggregate rating.
type Review struct {
	gorm.Model
	Rating     float64 `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment    string  `json:"comment"`
	CustomerID uint    `json:"customer_id"`
	Customer   User    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID uint    `json:"provider_id"`
	ServiceID  uint    `json:"service_id"`
	BookingID  uint    `json:"booking_id" gorm:"uniqueIndex"`
}

// BeforeCreate clamps the rating into the 1.0–5.0 range.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}
