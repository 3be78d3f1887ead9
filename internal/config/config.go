// Package config loads the service configuration from an env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is the complete service configuration.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Twilio   TwilioConfig
}

// AppConfig holds HTTP and domain settings.
type AppConfig struct {
	Host              string
	Port              string
	LogLevel          string
	Timezone          string
	BookingSlots      []string
	AvailabilityCache time.Duration
	BcryptCost        int
}

// PostgresConfig holds the database connection settings.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
	Migrate      bool
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// RedisConfig holds the availability cache connection settings.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig holds event publishing settings. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// TwilioConfig holds SMS settings. An empty AccountSID disables SMS.
type TwilioConfig struct {
	AccountSID         string
	AuthToken          string
	FromNumber         string
	DefaultCountryCode string
}

// Load reads path with godotenv (a missing file is ignored) and builds a
// Config from the environment, falling back to defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.App.Timezone = getEnv("APP_TIMEZONE", "America/Argentina/Buenos_Aires")
	cfg.App.BookingSlots = splitList(getEnv("APP_BOOKING_SLOTS",
		"09:00,10:00,11:00,12:00,13:00,14:00,15:00,16:00,17:00,18:00"))
	cacheSeconds, err := getInt("APP_AVAILABILITY_CACHE_SECOND", 300)
	if err != nil {
		return nil, err
	}
	cfg.App.AvailabilityCache = time.Duration(cacheSeconds) * time.Second
	if cfg.App.BcryptCost, err = getInt("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return nil, err
	}

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "nailstudio")
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.Postgres.Migrate, err = strconv.ParseBool(getEnv("POSTGRES_MIGRATE", "true")); err != nil {
		return nil, fmt.Errorf("POSTGRES_MIGRATE: %w", err)
	}

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	// Kafka config
	cfg.Kafka.Brokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", "nailstudio.events")

	// Twilio config
	cfg.Twilio.AccountSID = getEnv("TWILIO_ACCOUNT_SID", "")
	cfg.Twilio.AuthToken = getEnv("TWILIO_AUTH_TOKEN", "")
	cfg.Twilio.FromNumber = getEnv("TWILIO_PHONE_NUMBER", "")
	cfg.Twilio.DefaultCountryCode = getEnv("SMS_DEFAULT_COUNTRY_CODE", "+54")

	return &cfg, nil
}

// Location resolves App.Timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
