package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CLOUDFLARE_R2_BUCKET", "assets")
	t.Setenv("CLOUDFLARE_R2_ACCESS_KEY", "key-id")
	t.Setenv("CLOUDFLARE_R2_SECRET_KEY", "key-secret")
	t.Setenv("CLOUDFLARE_R2_BUCKET_ENDPOINT", "https://acc.r2.cloudflarestorage.com/")
	t.Setenv("ALLOWED_HOSTS", "example.com, api.example.com")
	t.Setenv("DEBUG", "0")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.R2Bucket)
	assert.Equal(t, "key-id", cfg.R2AccessKey)
	assert.Equal(t, "key-secret", cfg.R2SecretKey)
	assert.Equal(t, "https://acc.r2.cloudflarestorage.com", cfg.R2Endpoint, "trailing slash should be trimmed")
	assert.Equal(t, []string{"example.com", "api.example.com"}, cfg.AllowedHosts)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadFailsOnMissingStorageVars(t *testing.T) {
	required := []string{
		"CLOUDFLARE_R2_BUCKET",
		"CLOUDFLARE_R2_ACCESS_KEY",
		"CLOUDFLARE_R2_SECRET_KEY",
		"CLOUDFLARE_R2_BUCKET_ENDPOINT",
	}
	for _, name := range required {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(name, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoadRequiresAllowedHostsInProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_HOSTS", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALLOWED_HOSTS")
}

func TestLoadDebugSkipsAllowedHosts(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_HOSTS", "")
	t.Setenv("DEBUG", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Empty(t, cfg.AllowedHosts)
}
