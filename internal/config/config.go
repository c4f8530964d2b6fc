// Package config loads service configuration from an env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application, database, cache, broker, auth and moderation settings.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int
	LockTimeout          time.Duration // Bound on how long a transaction waits for a row lock

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	AssetCacheTTL     time.Duration

	KafkaBrokers []string // Empty disables decision event publishing
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	MaxPendingPerUser int
	DefaultPageSize   int
	MaxPageSize       int

	UploadBaseURL string        // Base of placeholder upload and file URLs
	UploadExpiry  time.Duration // Lifetime reported for placeholder upload URLs
}

// Load reads variables from the env file at path (missing file is ignored),
// applies defaults and validates the result. Process environment wins over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:          getEnv("APP_HOST", "localhost"),
		AppPort:          getEnv("APP_PORT", "8080"),
		LogLevel:         getEnv("APP_LOG_LEVEL", "info"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresUser:     getEnv("POSTGRES_USER", "user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:       getEnv("POSTGRES_DB", "veritas"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "verification-decisions"),
		JWTSecretKey:     getEnv("JWT_SECRET_KEY", ""),
		UploadBaseURL:    strings.TrimRight(getEnv("UPLOAD_BASE_URL", "https://placeholder.example.com"), "/"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	var err error
	ints := []struct {
		key string
		def string
		dst *int
	}{
		{"POSTGRES_PORT", "5432", &cfg.PostgresPort},
		{"POSTGRES_MAX_OPEN_CONNS", "16", &cfg.PostgresMaxOpenConns},
		{"POSTGRES_MAX_IDLE_CONNS", "8", &cfg.PostgresMaxIdleConns},
		{"REDIS_PORT", "6379", &cfg.RedisPort},
		{"REDIS_DB", "0", &cfg.RedisDB},
		{"REDIS_POOL_SIZE", "10", &cfg.RedisPoolSize},
		{"REDIS_MIN_IDLE_CONNS", "2", &cfg.RedisMinIdleConns},
		{"MAX_PENDING_PER_USER", "3", &cfg.MaxPendingPerUser},
		{"DEFAULT_PAGE_SIZE", "50", &cfg.DefaultPageSize},
		{"MAX_PAGE_SIZE", "100", &cfg.MaxPageSize},
	}
	for _, v := range ints {
		if *v.dst, err = strconv.Atoi(getEnv(v.key, v.def)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", v.key, err)
		}
	}

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"POSTGRES_LOCK_TIMEOUT", "30s", &cfg.LockTimeout},
		{"ASSET_CACHE_TTL", "60s", &cfg.AssetCacheTTL},
		{"JWT_EXP", "30m", &cfg.JWTExp},
		{"UPLOAD_URL_EXPIRY", "1h", &cfg.UploadExpiry},
	}
	for _, v := range durations {
		if *v.dst, err = time.ParseDuration(getEnv(v.key, v.def)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", v.key, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail at request time.
func (c *Config) Validate() error {
	var errs []error
	if len(c.JWTSecretKey) < 32 {
		errs = append(errs, errors.New("JWT_SECRET_KEY must be at least 32 characters"))
	}
	if c.JWTExp < 5*time.Minute || c.JWTExp > 120*time.Minute {
		errs = append(errs, errors.New("JWT_EXP must be between 5m and 120m"))
	}
	if c.MaxPendingPerUser < 1 {
		errs = append(errs, errors.New("MAX_PENDING_PER_USER must be positive"))
	}
	if c.MaxPageSize < 1 {
		errs = append(errs, errors.New("MAX_PAGE_SIZE must be positive"))
	}
	if c.DefaultPageSize < 1 || c.DefaultPageSize > c.MaxPageSize {
		errs = append(errs, errors.New("DEFAULT_PAGE_SIZE must be between 1 and MAX_PAGE_SIZE"))
	}
	if c.LockTimeout < 0 {
		errs = append(errs, errors.New("POSTGRES_LOCK_TIMEOUT must not be negative"))
	}
	if !strings.HasPrefix(c.UploadBaseURL, "https://") {
		errs = append(errs, errors.New("UPLOAD_BASE_URL must be an https URL"))
	}
	return errors.Join(errs...)
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// HTTPAddr returns host:port the HTTP server listens on.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}
