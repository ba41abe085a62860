package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "brewery-backend", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Bootstrap.Enabled)
	assert.Equal(t, 2410, cfg.Bootstrap.RecordLimit)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BREWERY_STORE_DRIVER", "memory")
	t.Setenv("BREWERY_APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "9090", cfg.App.Port)
}

func TestValidate_RejectsUnknownStoreDriver(t *testing.T) {
	t.Setenv("BREWERY_STORE_DRIVER", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_ProductionRequiresStrongSecret(t *testing.T) {
	t.Setenv("BREWERY_APP_ENV", "production")
	t.Setenv("BREWERY_JWT_SECRET", "short")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "brewery",
		Password: "p@ss/word",
		DBName:   "brewery",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word")
}
