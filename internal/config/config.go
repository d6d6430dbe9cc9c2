package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// StateKey names the key-value slot holding the persisted snapshot.
	// Changing the key is how the snapshot schema is versioned: a new key
	// forces existing installs back to the seeded defaults.
	StateKey string

	// TelemedicineProfessionalID is the professional that public telemedicine
	// bookings are scheduled against. Reserving id 3 is a convention carried
	// over from the seeded directory, not an enforced constraint.
	TelemedicineProfessionalID int64

	CORSAllowedOrigins []string

	PublicBookingRate  float64
	PublicBookingBurst int

	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:                       getEnv("PORT", "8080"),
		Env:                        getEnv("ENV", "development"),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
		RedisAddr:                  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:              getEnv("REDIS_PASSWORD", ""),
		RedisTLS:                   getEnvAsBool("REDIS_TLS", false),
		StateKey:                   getEnv("STATE_KEY", "sghss:state:v1"),
		TelemedicineProfessionalID: getEnvAsInt64("TELEMEDICINE_PROFESSIONAL_ID", 3),
		CORSAllowedOrigins:         getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
		PublicBookingRate:          getEnvAsFloat("PUBLIC_BOOKING_RATE", 1),
		PublicBookingBurst:         getEnvAsInt("PUBLIC_BOOKING_BURST", 5),
		ShutdownTimeout:            getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated environment variable into trimmed,
// non-empty entries.
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
