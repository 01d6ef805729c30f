package models

// SpecializationName enum
type SpecializationName string

const (
	SpecializationDentist SpecializationName = "dentist"
	SpecializationNurse   SpecializationName = "nurse"
	SpecializationDoctor  SpecializationName = "doctor"
)

// Specialization is a lookup row with the same find-or-create
// semantics as Role.
type Specialization struct {
	BaseModel
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}
