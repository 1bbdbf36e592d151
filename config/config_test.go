package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_SCHEMA", "SQLITE_PATH", "DB_LOG_QUERIES", "APP_ENV", "APP_PORT", "WEB_DIR",
	"CATALOG_LINK_EXISTING_BRANDS", "CATALOG_CONFLICT_RETRIES",
}

// clearEnv unsets every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "purchasing", cfg.Database.DBName)
	assert.Equal(t, "purchasing", cfg.Database.Schema)
	assert.True(t, cfg.Database.LogQueries)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "./web", cfg.App.WebDir)
	assert.False(t, cfg.Catalog.LinkExistingBrands)
	assert.Equal(t, 1, cfg.Catalog.ConflictRetries)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/buy.db")
	t.Setenv("DB_LOG_QUERIES", "false")
	t.Setenv("CATALOG_LINK_EXISTING_BRANDS", "true")
	t.Setenv("CATALOG_CONFLICT_RETRIES", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/buy.db", cfg.Database.GetDSN())
	assert.Equal(t, "sqlite:/tmp/buy.db", cfg.Database.Describe())
	assert.False(t, cfg.Database.LogQueries)
	assert.True(t, cfg.Catalog.LinkExistingBrands)
	assert.Equal(t, 3, cfg.Catalog.ConflictRetries)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DB_DRIVER", "mysql"},
		{"CATALOG_CONFLICT_RETRIES", "many"},
		{"CATALOG_CONFLICT_RETRIES", "-1"},
		{"CATALOG_LINK_EXISTING_BRANDS", "perhaps"},
		{"DB_LOG_QUERIES", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     "5432",
		User:     "buyer",
		Password: "secret",
		DBName:   "purchasing",
		SSLMode:  "disable",
		Schema:   "purchasing",
	}

	assert.Equal(t,
		"host=db port=5432 user=buyer password=secret dbname=purchasing sslmode=disable search_path=purchasing",
		cfg.GetDSN())
	assert.Equal(t, "buyer@db:5432/purchasing", cfg.Describe())
	assert.NotContains(t, cfg.Describe(), "secret")
}
