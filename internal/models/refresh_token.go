package models

import (
	"time"
)

// RefreshToken represents a JWT refresh token in the database
type RefreshToken struct {
	BaseModel
	UserID    uint      `gorm:"index" json:"user_id"`
	Token     string    `gorm:"type:text;not null" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `gorm:"default:false" json:"is_revoked"`

	// Define the relationship to User
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
