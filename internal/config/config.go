package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Auth
	JWTSecret         string
	JWTExpirationDur  time.Duration
	RefreshExpiration time.Duration
	AdminAPIKey       string

	// Ledger
	BatchConcurrency int

	// Messaging
	AMQPURL      string
	AMQPExchange string

	// Push notifications
	FCMProjectID       string
	FCMCredentialsFile string
}

// Load loads configuration from a .env file (when present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", defaultDBPort(getEnv("DB_DRIVER", "postgres"))),
		DBUser:     getEnv("DB_USER", "wisenkap"),
		DBPassword: getEnv("DB_PASSWORD", "wisenkap"),
		DBName:     getEnv("DB_NAME", "wisenkap"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "wisenkap.db"),

		JWTSecret:   getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "wisenkap.ledger"),

		FCMProjectID:       getEnv("FCM_PROJECT_ID", ""),
		FCMCredentialsFile: getEnv("FCM_CREDENTIALS_FILE", ""),
	}

	cfg.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 15*time.Minute)
	cfg.RefreshExpiration = getDuration("REFRESH_EXPIRES_IN", 7*24*time.Hour)
	cfg.BatchConcurrency = getInt("BATCH_CONCURRENCY", 4)

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func defaultDBPort(driver string) string {
	if driver == "mysql" {
		return "3306"
	}
	return "5432"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, fallback)
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
