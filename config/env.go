package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is the backend used when API_BASE_URL is unset.
const DefaultAPIBaseURL = "http://localhost:8080"

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	AppEnv        string
	Port          string
	APIBaseURL    string
	APITimeout    time.Duration
	StorageDriver string
	StorageDir    string
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	SnapshotTTL   time.Duration
	DatabaseURL   string
	SessionCookie string
	SessionIdle   time.Duration
	OriginURL     string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8081")),
		APIBaseURL:    APIBaseURL(),
		APITimeout:    getDuration("API_TIMEOUT", 0),
		StorageDriver: getEnv("STORAGE_DRIVER", StorageFile),
		StorageDir:    getEnv("STORAGE_DIR", "./.bookmart"),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SnapshotTTL:   getDuration("SNAPSHOT_TTL", 0),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionCookie: getEnv("SESSION_COOKIE", "bookmart_session"),
		SessionIdle:   getDuration("SESSION_IDLE", 30*time.Minute),
		OriginURL:     os.Getenv("ORIGIN_URL"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      smtpPort,
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		SMTPFrom:      getEnv("SMTP_FROM", "no-reply@bookmart.local"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Backend API: %s", AppConfig.APIBaseURL)
	log.Printf("Snapshot storage: %s", AppConfig.StorageDriver)
	return AppConfig
}

// APIBaseURL reads API_BASE_URL without loading the rest of the config.
func APIBaseURL() string {
	return getEnv("API_BASE_URL", DefaultAPIBaseURL)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
