package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/filetug/allocfs/pkg/browse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	prev := lookupEnv
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	t.Cleanup(func() {
		lookupEnv = prev
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, browse.DefaultContentLimit, cfg.PreviewLimit)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultAddress, cfg.Address)
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		withEnv(t, nil)
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("required_missing", func(t *testing.T) {
		withEnv(t, nil)
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
		assert.ErrorContains(t, err, "failed to read config")
	})

	t.Run("file_then_env", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "config.yaml")
		yamlText := "address: https://nomad.example.com\ntoken: from-file\nnamespace: dev\ntimeout: 5s\npreview_limit: 2048\n"
		require.NoError(t, os.WriteFile(filePath, []byte(yamlText), 0o644))
		withEnv(t, map[string]string{EnvToken: "from-env", EnvNamespace: ""})

		cfg, err := Load(filePath, true)
		require.NoError(t, err)
		assert.Equal(t, "https://nomad.example.com", cfg.Address)
		assert.Equal(t, "from-env", cfg.Token)
		assert.Equal(t, "dev", cfg.Namespace)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 2048, cfg.PreviewLimit)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}

func TestConfig_AddressURL(t *testing.T) {
	u, err := Config{Address: "http://127.0.0.1:4646"}.AddressURL()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4646", u.Host)

	_, err = Config{Address: "ftp://host"}.AddressURL()
	assert.ErrorContains(t, err, "scheme must be http or https")

	_, err = Config{Address: "http://"}.AddressURL()
	assert.ErrorContains(t, err, "missing host")

	_, err = Config{Address: "http://bad host:%"}.AddressURL()
	assert.Error(t, err)
}
