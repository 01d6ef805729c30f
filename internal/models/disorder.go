package models

// Disorder is a diagnostic classification referenced by reports.
// Resolved-or-created by exact (name, description) match.
type Disorder struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
