package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Catalog  CatalogConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	Schema     string
	SQLitePath string
	LogQueries bool
}

// AppConfig holds application configuration
type AppConfig struct {
	Environment string
	Port        string
	// WebDir holds the templates/ and static/ directories
	WebDir string
}

// CatalogConfig tunes the quote upsert.
type CatalogConfig struct {
	// LinkExistingBrands links an already known brand to the quoting vendor.
	// Off by default: only newly created brands are linked.
	LinkExistingBrands bool
	// ConflictRetries is how many times a transaction that lost a unique-name
	// race is replayed. Zero surfaces the conflict to the caller.
	ConflictRetries int
}

// Driver names accepted in DB_DRIVER
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	retries, err := getEnvInt("CATALOG_CONFLICT_RETRIES", 1)
	if err != nil {
		return nil, err
	}
	if retries < 0 {
		return nil, fmt.Errorf("CATALOG_CONFLICT_RETRIES must not be negative, got %d", retries)
	}

	linkExisting, err := getEnvBool("CATALOG_LINK_EXISTING_BRANDS", false)
	if err != nil {
		return nil, err
	}

	logQueries, err := getEnvBool("DB_LOG_QUERIES", true)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", DriverPostgres),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "purchasing"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			Schema:     getEnv("DB_SCHEMA", "purchasing"),
			SQLitePath: getEnv("SQLITE_PATH", "purchasing.db"),
			LogQueries: logQueries,
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			WebDir:      getEnv("WEB_DIR", "./web"),
		},
		Catalog: CatalogConfig{
			LinkExistingBrands: linkExisting,
			ConflictRetries:    retries,
		},
	}

	switch config.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)",
			config.Database.Driver, DriverPostgres, DriverSQLite)
	}

	return config, nil
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode, c.Schema)
}

// Describe is a password-free summary for startup banners.
func (c *DatabaseConfig) Describe() string {
	if c.Driver == DriverSQLite {
		return "sqlite:" + c.SQLitePath
	}
	return fmt.Sprintf("%s@%s:%s/%s", c.User, c.Host, c.Port, c.DBName)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
