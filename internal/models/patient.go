package models

import (
	"time"
)

// Patient holds the patient profile attached one-to-one to an account
// whose role is "patient". Deleting the account cascades to this row.
type Patient struct {
	BaseModel
	UserID      uint      `gorm:"uniqueIndex;not null" json:"-"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Phone       string    `gorm:"uniqueIndex;size:10;not null" json:"phone"`
	DateOfBirth time.Time `gorm:"type:date" json:"date_of_birth"`
	Address     string    `gorm:"type:text" json:"address"`
}

// Sanitized returns the patient with its account sanitized for API responses.
func (p *Patient) Sanitized() PatientSanitized {
	return PatientSanitized{
		ID:          p.ID,
		User:        p.User.Sanitize(),
		Phone:       p.Phone,
		DateOfBirth: p.DateOfBirth.Format("2006-01-02"),
		Address:     p.Address,
	}
}

// PatientSanitized is the API representation of a Patient.
type PatientSanitized struct {
	ID          uint          `json:"id"`
	User        UserSanitized `json:"user"`
	Phone       string        `json:"phone"`
	DateOfBirth string        `json:"date_of_birth"`
	Address     string        `json:"address"`
}
