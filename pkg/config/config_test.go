package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsDevelopment())
	assert.NotEmpty(t, cfg.Session.Secret, "en development se usa un secreto de desarrollo")
	assert.Equal(t, "estoque_session", cfg.Session.CookieName)
	assert.Equal(t, 480, cfg.Session.TTLMinutes)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "10-M", cfg.RateLimit.Login)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "s3cr3t")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, "memory", cfg.DB.Driver)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_ProduccionSinSecretoFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "estoque", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/estoque?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
