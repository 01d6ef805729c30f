package models

// RoleName enum
type RoleName string

const (
	RoleAdmin      RoleName = "admin"
	RolePatient    RoleName = "patient"
	RoleSpecialist RoleName = "specialist"
)

// Role is a de-duplicated lookup row identified by its lowercase name.
// Rows are created lazily on first use and never deleted while an
// account still references them (FK RESTRICT).
type Role struct {
	BaseModel
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`
}
