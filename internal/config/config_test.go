package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shgportal/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "embedded", cfg.Location.Source)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Len(t, cfg.CORS.AllowedOrigins, 3)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHG_SERVER_PORT", ":9090")
	t.Setenv("SHG_DB_HOST", "db.internal")
	t.Setenv("SHG_LOCATION_SOURCE", "postgres")
	t.Setenv("SHG_CORS_ALLOWED_ORIGINS", " https://shg.tripura.gov.in , ,https://admin.shg.tripura.gov.in")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "postgres", cfg.Location.Source)
	assert.Equal(t, []string{"https://shg.tripura.gov.in", "https://admin.shg.tripura.gov.in"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "7000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestLoad_UnknownLocationSource(t *testing.T) {
	t.Setenv("SHG_LOCATION_SOURCE", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", d.DSN())
}
