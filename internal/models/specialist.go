package models

import (
	"time"
)

// Specialist holds the specialist profile attached one-to-one to an
// account whose role is "specialist". Phone is not unique here, unlike
// Patient. Deleting the account cascades to this row; the referenced
// Specialization is never deleted while a specialist points at it.
type Specialist struct {
	BaseModel
	UserID           uint           `gorm:"uniqueIndex;not null" json:"-"`
	User             User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	SpecializationID uint           `gorm:"not null;index" json:"-"`
	Specialization   Specialization `gorm:"foreignKey:SpecializationID;constraint:OnDelete:RESTRICT" json:"specialization"`
	Phone            string         `gorm:"size:10" json:"phone"`
	DateOfBirth      time.Time      `gorm:"type:date" json:"date_of_birth"`
}

// Sanitized returns the specialist with its account sanitized for API responses.
func (s *Specialist) Sanitized() SpecialistSanitized {
	return SpecialistSanitized{
		ID:             s.ID,
		User:           s.User.Sanitize(),
		Specialization: s.Specialization,
		Phone:          s.Phone,
		DateOfBirth:    s.DateOfBirth.Format("2006-01-02"),
	}
}

// SpecialistSanitized is the API representation of a Specialist.
type SpecialistSanitized struct {
	ID             uint           `json:"id"`
	User           UserSanitized  `json:"user"`
	Specialization Specialization `json:"specialization"`
	Phone          string         `json:"phone"`
	DateOfBirth    string         `json:"date_of_birth"`
}
