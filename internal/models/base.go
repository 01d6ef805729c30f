package models

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Database connection instance
var DB *gorm.DB

// InitDB initializes database connection
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	var err error

	// Connect to MySQL database
	DB, err = gorm.Open(mysql.Open(config.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto migrate the database models
	err = DB.AutoMigrate(
		&Role{},
		&User{},
		&RefreshToken{},
		&Specialization{},
		&Patient{},
		&Specialist{},
		&Disorder{},
		&Report{},
	)
	if err != nil {
		return nil, err
	}

	return DB, nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}
