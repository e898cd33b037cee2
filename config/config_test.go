package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, "auth:\n  jwt_secret: a-very-long-test-secret\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.PasswordReset.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "http://localhost:3000", cfg.Frontend.URL)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "auth:\n  jwt_secret: a-very-long-test-secret\nserver:\n  port: 9000\n")
	t.Setenv("TRAINING_SERVER_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestLoad_MissingSecret(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8000\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_ShortSecret(t *testing.T) {
	cfg := &Config{
		Server:        ServerConfig{Port: 8000},
		Auth:          AuthConfig{JWTSecret: "short"},
		PasswordReset: PasswordResetConfig{TokenTTL: time.Hour},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{
		Server:        ServerConfig{Port: 70000},
		Auth:          AuthConfig{JWTSecret: "a-very-long-test-secret"},
		PasswordReset: PasswordResetConfig{TokenTTL: time.Hour},
	}
	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable TimeZone=UTC", c.DSN())
}
