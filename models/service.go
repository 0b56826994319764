package models

import (
	"gorm.io/gorm"
)

type ServiceCategory string

const (
	CategoryPlumbing   ServiceCategory = "plumbing"
	CategoryElectrical ServiceCategory = "electrical"
	CategoryCleaning   ServiceCategory = "cleaning"
	CategoryCarpentry  ServiceCategory = "carpentry"
	CategoryPainting   ServiceCategory = "painting"
	CategoryOther      ServiceCategory = "other"
)

// IsValid reports whether the category belongs to the closed enumeration.
func (c ServiceCategory) IsValid() bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryCleaning,
		CategoryCarpentry, CategoryPainting, CategoryOther:
		return true
	}
	return false
}

type Service struct {
	gorm.Model
	ProviderID    uint            `json:"provider_id"`
	Provider      User            `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      ServiceCategory `json:"category"`
	Price         float64         `json:"price"`
	Duration      float64         `json:"duration"` // hours
	IsActive      bool            `json:"is_active" gorm:"default:true"`
	TotalBookings int64           `json:"total_bookings" gorm:"default:0"`
}
