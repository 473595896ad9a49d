// Package config loads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Session store backends.
const (
	SessionRedis  = "redis"
	SessionMemory = "memory"
)

// Config holds the service settings read by Load and LoadStorage.
type Config struct {
	HTTPAddr string
	TLSCert  string
	TLSKey   string

	Storage     string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPass      string
	DBName      string
	DBSSLMode   string

	SessionStore  string
	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration

	JWTSecret     string
	AdminPassword string

	OTELHost        string
	OTELProbability float64
	LogLevel        string
}

// Load reads the .env file at path (if it exists) and then the process
// environment. Variables already set in the environment win over .env.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStorage is Load for tools that only touch the database. Settings of
// the HTTP server, such as JWT_SECRET, are not required.
func LoadStorage(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateStorage(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(path string) (*Config, error) {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	ttl, err := time.ParseDuration(getenv("SESSION_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	prob, err := strconv.ParseFloat(getenv("OTEL_PROBABILITY", "1.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("OTEL_PROBABILITY: %w", err)
	}

	cfg := &Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8443"),
		TLSCert:  os.Getenv("TLS_CERT"),
		TLSKey:   os.Getenv("TLS_KEY"),

		Storage:     getenv("STORAGE", StoragePostgres),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPass:      os.Getenv("DB_PASSWORD"),
		DBName:      getenv("DB_NAME", "coffeeshop"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),

		SessionStore:  getenv("SESSION_STORE", SessionRedis),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SessionTTL:    ttl,

		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),

		OTELHost:        os.Getenv("OTEL_HOST"),
		OTELProbability: prob,
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

// DSN returns the postgres connection string. DATABASE_URL takes precedence
// over the individual DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) validateStorage() error {
	switch c.Storage {
	case StoragePostgres, StorageMemory:
		return nil
	}
	return fmt.Errorf("STORAGE: unknown backend %q", c.Storage)
}

func (c *Config) validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}
	switch c.SessionStore {
	case SessionRedis, SessionMemory:
	default:
		return fmt.Errorf("SESSION_STORE: unknown backend %q", c.SessionStore)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	return nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
