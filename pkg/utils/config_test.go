package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_EnvFile(t *testing.T) {
	for _, key := range []string{"APP_NAME", "PORT", "JWT_SECRET", "DB_NAME", "OTP_LENGTH", "THROTTLE_WINDOW", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "APP_NAME=yamdb-test\nPORT=9090\nJWT_SECRET=s3cret\nDB_NAME=yamdb\nOTP_LENGTH=8\nTHROTTLE_WINDOW=30m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "yamdb-test", cfg.App.Name)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "yamdb", cfg.Database.Name)
	assert.Equal(t, 8, cfg.OTP.Length)
	assert.Equal(t, 30*time.Minute, cfg.Throttle.Window)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfigFrom_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PORT", "7070")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSOrigins)
}

func TestLoadConfigFrom_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
