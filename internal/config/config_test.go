package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://127.0.0.1:8000/", cfg.BackendURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.False(t, cfg.RequireOK)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatbot.yaml")
	body := `
backend_url: http://api.internal:9000
timeout: 3s
require_ok: true
theme: mono
log:
  file: "-"
  level: debug
server:
  addr: ":9000"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:9000/", cfg.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.True(t, cfg.RequireOK)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "-", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CHATBOT_BACKEND_URL", "https://example.test/base")
	t.Setenv("CHATBOT_TIMEOUT", "250ms")
	t.Setenv("CHATBOT_REQUIRE_OK", "true")
	t.Setenv("CHATBOT_THEME", "neon")
	t.Setenv("CHATBOT_ADDR", ":1234")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/base/", cfg.BackendURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.RequireOK)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, ":1234", cfg.Server.Addr)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("bad timeout env", func(t *testing.T) {
		t.Setenv("CHATBOT_TIMEOUT", "soon")
		_, err := Load("")
		assert.Error(t, err)
	})
	t.Run("bad scheme", func(t *testing.T) {
		t.Setenv("CHATBOT_BACKEND_URL", "ftp://127.0.0.1/")
		_, err := Load("")
		assert.ErrorContains(t, err, "unsupported scheme")
	})
	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeout: [1"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "parse config")
	})
}

func TestValidateTimeout(t *testing.T) {
	cfg := Default()
	cfg.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "http://a/", NormalizeURL("http://a"))
	assert.Equal(t, "http://a/", NormalizeURL(" http://a/ "))
	assert.Equal(t, "", NormalizeURL(""))
}
