package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pulse/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "", cfg.DB.Host)
	require.Equal(t, 5432, cfg.DB.Port)
	require.Equal(t, ":3333", cfg.Server.Addr)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PULSE_DB_HOST", "db.internal")
	t.Setenv("PULSE_DB_PORT", "5433")
	t.Setenv("PULSE_SERVER_ADDR", ":8080")
	t.Setenv("PULSE_LOG_LEVEL", "debug")
	t.Setenv("PULSE_UNRELATED", "ignored")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "db.internal", cfg.DB.Host)
	require.Equal(t, 5433, cfg.DB.Port)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestConnString(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "pulse",
		Password: "secret",
		Name:     "pulse",
	}
	require.Equal(
		t,
		"user=pulse password=secret dbname=pulse sslmode=disable host=localhost port=5432",
		cfg.ConnString(),
	)
}
