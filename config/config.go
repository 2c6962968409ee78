package config

import (
	"os"
	"strconv"
)

const defaultJWTSecret = "change-me-in-production"

type Config struct {
	Port                string
	DatabaseDSN         string
	JWTExpireHours      int
	DefaultLeaveBalance int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
}

func Load() *Config {
	return &Config{
		Port:                GetEnv("PORT", "8000"),
		DatabaseDSN:         GetEnv("DATABASE_DSN", "root:@tcp(127.0.0.1:3306)/leave_tracker?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTExpireHours:      GetEnvAsInt("JWT_EXPIRE_HOURS", 24),
		DefaultLeaveBalance: GetEnvAsInt("DEFAULT_LEAVE_BALANCE", 20),
		SMTPHost:            GetEnv("SMTP_HOST", ""),
		SMTPPort:            GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:            GetEnv("SMTP_USER", ""),
		SMTPPassword:        GetEnv("SMTP_PASSWORD", ""),
		SMTPFrom:            GetEnv("SMTP_FROM", "no-reply@company.com"),
	}
}

// JWTSecret is read lazily so the signing side (auth usecase) and the
// verifying side (auth middleware) always agree on the key.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", defaultJWTSecret))
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
