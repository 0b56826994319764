package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// IsValidRole reports whether role is one of the three known roles.
func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleProvider || role == RoleAdmin
}

type User struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	Name            string           `json:"name"`
	Email           string           `json:"email" gorm:"unique"`
	Password        string           `json:"password,omitempty"`
	Phone           string           `json:"phone"`
	Address         string           `json:"address"`
	ProfileImage    string           `json:"profile_image,omitempty"`
	Role            string           `json:"role"`
	IsActive        bool             `json:"is_active" gorm:"default:true"`
	ProviderProfile *ProviderProfile `json:"provider_profile,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// BeforeCreate defaults the role to customer. The role never changes after
// creation; admin moderation only flips IsActive and the provider approval
// flag.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}

// ProviderProfile holds the provider-only sub-record. The provider's offerings
// are the Service rows carrying its ID.
type ProviderProfile struct {
	gorm.Model
	ProviderID     uint    `json:"provider_id" gorm:"uniqueIndex"`
	Experience     int     `json:"experience"` // years
	Qualifications string  `json:"qualifications"`
	IsApproved     bool    `json:"is_approved" gorm:"default:false"`
	Rating         float64 `json:"rating" gorm:"default:0"`
	TotalReviews   int64   `json:"total_reviews" gorm:"default:0"`
}
