package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret       string
	JWTExpiration   time.Duration
	SessionExpTime  time.Duration
	MaxLoginRetries int
	LockoutDuration time.Duration
}

type StorageConfig struct {
	Bucket string
	Region string
}

type RateLimitConfig struct {
	Window    time.Duration
	MaxPerWin int64
}

type Config struct {
	Environment    string
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	RabbitMQ       RabbitMQConfig
	Auth           AuthConfig
	Storage        StorageConfig
	RateLimit      RateLimitConfig
	InternalAPIKey string
	AllowedOrigins []string
	APIBaseURL     string
}

// Load reads configuration from environment variables. A local .env file is
// honoured when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "agroexport"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", ""),
			JWTExpiration:   getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime:  getDuration("SESSION_EXPIRATION", 24*time.Hour),
			MaxLoginRetries: getInt("MAX_LOGIN_RETRIES", 5),
			LockoutDuration: getDuration("LOCKOUT_DURATION", 2*time.Hour),
		},
		Storage: StorageConfig{
			Bucket: getEnv("S3_BUCKET", "agroexport-products"),
			Region: getEnv("S3_REGION", "ap-south-1"),
		},
		RateLimit: RateLimitConfig{
			Window:    getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
			MaxPerWin: int64(getInt("RATE_LIMIT_MAX", 100)),
		},
		InternalAPIKey: getEnv("INTERNAL_API_KEY", ""),
		AllowedOrigins: getList("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080"),
	}
}

// GetDSN builds the MySQL connection string. clientFoundRows makes UPDATE
// report matched rows instead of changed rows, so writing values a row
// already holds still distinguishes an existing record from a missing one.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&clientFoundRows=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// IsDevelopment reports whether internal error detail may be exposed.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
