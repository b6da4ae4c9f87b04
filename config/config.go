// Package config loads the application configuration from the environment
// into one explicit struct. The struct is built once in main and handed to
// the components that need it; nothing reads configuration globals at
// request time.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ttra33507-star/c4web/payway"

	"github.com/joho/godotenv"
)

// Database drivers the application can run on.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	Port string
	Env  string

	// Database. Driver is "postgres" when POSTGRES_HOST is set (or
	// DB_DRIVER forces it), "sqlite" otherwise.
	DBDriver         string
	SQLitePath       string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	AllowedOrigins    []string
	SupportContactURL string
	SeedCatalog       bool

	Payway payway.Config
}

// LoadConfig reads configuration from environment variables, loading a
// .env file first when one is present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("APP_ENV", "development"),

		SQLitePath:       getEnv("SQLITE_PATH", "c4hub.db"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),

		AllowedOrigins:    splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		SupportContactURL: os.Getenv("SUPPORT_CONTACT_URL"),
		SeedCatalog:       getEnv("SEED_CATALOG", "true") != "false",

		Payway: payway.Config{
			MerchantID:  getEnv("ABA_PAYWAY_MERCHANT_ID", "YOUR_MERCHANT_ID"),
			APIKey:      getEnv("ABA_PAYWAY_API_KEY", "YOUR_API_KEY"),
			PublicKey:   getEnv("ABA_PAYWAY_PUBLIC_KEY", "YOUR_PUBLIC_KEY"),
			CheckoutURL: getEnv("ABA_PAYWAY_CHECKOUT_URL", "https://checkout.payway.com.kh/api/purchase"),
			ReturnURL:   getEnv("ABA_PAYWAY_RETURN_URL", "http://localhost:5000/payment/confirm"),
			CancelURL:   getEnv("ABA_PAYWAY_CANCEL_URL", "http://localhost:5000/services"),
			Timeout:     time.Duration(getEnvInt("ABA_PAYWAY_TIMEOUT", 30)) * time.Second,
		},
	}

	switch driver := strings.ToLower(os.Getenv("DB_DRIVER")); driver {
	case DriverSQLite, DriverPostgres:
		cfg.DBDriver = driver
	case "":
		if cfg.PostgresHost != "" {
			cfg.DBDriver = DriverPostgres
		} else {
			cfg.DBDriver = DriverSQLite
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	if cfg.DBDriver == DriverPostgres {
		if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" {
			return nil, fmt.Errorf("database config incomplete: POSTGRES_USER, POSTGRES_PASSWORD and POSTGRES_DB are required")
		}
		if cfg.PostgresHost == "" {
			cfg.PostgresHost = "localhost"
		}
	}

	return cfg, nil
}

// PostgresDSN builds the GORM Postgres connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword,
		c.PostgresDB, c.PostgresPort, c.PostgresSSLMode, c.PostgresTimeZone,
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if raw == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(strings.TrimSuffix(o, "/")); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
