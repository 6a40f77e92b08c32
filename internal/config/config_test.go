package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"IRONKIT_ADDRESS", "IRONKIT_TOKEN", "IRONKIT_FILES_ROOT", "IRONKIT_LOG_LEVEL",
		"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iron-kit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  address: ":9090"
files:
  root: /srv/files
minio:
  endpoint: localhost:9000
  access_key: admin
  secret_key: password
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "/srv/files", cfg.Files.Root)
	assert.Equal(t, "localhost:9000", cfg.Minio.Endpoint)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.MinioEnabled())
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "files:\n  root: /data\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.MinioEnabled())
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  token: from-file\n")
	t.Setenv("IRONKIT_TOKEN", "from-env")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_ACCESS_KEY", "key")
	t.Setenv("MINIO_SECRET_KEY", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Server.Token)
	assert.Equal(t, "minio:9000", cfg.Minio.Endpoint)
	assert.Equal(t, "secret", cfg.Minio.SecretKey)
}

func TestLoadOrDefault(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "server: [unclosed"},
		{"unknown level", "logging:\n  level: chatty\n"},
		{"empty root", "files:\n  root: \"\"\n"},
		{"minio without keys", "minio:\n  endpoint: localhost:9000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidateMessages(t *testing.T) {
	cfg := Default()
	cfg.Server.Address = " "
	assert.EqualError(t, cfg.Validate(), "server address is required")

	cfg = Default()
	cfg.Files.Root = ""
	assert.EqualError(t, cfg.Validate(), "files root is required")

	assert.NoError(t, Default().Validate())
}
