package models

import (
	"time"
)

// Report links a patient, a specialist and a disorder. All three
// references are RESTRICTed: a referenced row cannot be deleted while
// a report still points at it. DateCreated is server-assigned and
// never updated.
type Report struct {
	BaseModel
	PatientID    uint       `gorm:"not null;index" json:"-"`
	Patient      Patient    `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"patient"`
	SpecialistID uint       `gorm:"not null;index" json:"-"`
	Specialist   Specialist `gorm:"foreignKey:SpecialistID;constraint:OnDelete:RESTRICT" json:"specialist"`
	DisorderID   uint       `gorm:"not null;index" json:"-"`
	Disorder     Disorder   `gorm:"foreignKey:DisorderID;constraint:OnDelete:RESTRICT" json:"disorder"`
	Diagnosis    string     `gorm:"type:text" json:"diagnosis"`
	DateCreated  time.Time  `gorm:"autoCreateTime;<-:create" json:"date_created"`
}

// Sanitized returns the report graph with account data sanitized.
func (r *Report) Sanitized() ReportSanitized {
	return ReportSanitized{
		ID:          r.ID,
		Patient:     r.Patient.Sanitized(),
		Specialist:  r.Specialist.Sanitized(),
		Disorder:    r.Disorder,
		Diagnosis:   r.Diagnosis,
		DateCreated: r.DateCreated,
	}
}

// ReportSanitized is the API representation of a Report.
type ReportSanitized struct {
	ID          uint                `json:"id"`
	Patient     PatientSanitized    `json:"patient"`
	Specialist  SpecialistSanitized `json:"specialist"`
	Disorder    Disorder            `json:"disorder"`
	Diagnosis   string              `json:"diagnosis"`
	DateCreated time.Time           `json:"date_created"`
}
