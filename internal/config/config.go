package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port                      string
	Origin                    string
	Environment               string
	LogLevel                  string
	JWTSecret                 string
	JWTRefreshSecret          string
	Database                  DatabaseConfig
	JWTExpirationMinutes      int
	JWTRefreshExpirationHours int
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "clinic"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	jwtRefreshExpHours, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168")) // 7 days
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_HOURS: %w", err)
	}

	// Return complete configuration
	return &Config{
		Port:                      getEnv("PORT", "3001"),
		Origin:                    getEnv("ORIGIN", "http://localhost:4200"),
		Environment:               getEnv("APP_ENV", "development"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		JWTSecret:                 getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTRefreshSecret:          getEnv("JWT_REFRESH_SECRET", "default_refresh_secret"),
		Database:                  dbConfig,
		JWTExpirationMinutes:      jwtExpMinutes,
		JWTRefreshExpirationHours: jwtRefreshExpHours,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
