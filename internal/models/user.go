package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents an account in the system
type User struct {
	BaseModel
	Email       string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username    string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password    string    `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	FirstName   string    `gorm:"size:100" json:"first_name"`
	LastName    string    `gorm:"size:100" json:"last_name"`
	RoleID      uint      `gorm:"not null;index" json:"-"`
	Role        Role      `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT" json:"role"`
	DateJoined  time.Time `gorm:"autoCreateTime" json:"date_joined"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	IsStaff     bool      `gorm:"default:true" json:"is_staff"`
	IsAdmin     bool      `gorm:"default:false" json:"is_admin"`
	IsSuperuser bool      `gorm:"default:false" json:"is_superuser"`

	// Relations (not always preloaded)
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized represents the account data that is safe to send in API responses.
type UserSanitized struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       Role      `json:"role"`
	DateJoined time.Time `json:"date_joined"`
	IsActive   bool      `json:"is_active"`
	IsStaff    bool      `json:"is_staff"`
	IsAdmin    bool      `json:"is_admin"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		DateJoined: u.DateJoined,
		IsActive:   u.IsActive,
		IsStaff:    u.IsStaff,
		IsAdmin:    u.IsAdmin,
	}
}
