package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGet_Defaults(t *testing.T) {
	t.Setenv(envAPIKey, "")
	t.Setenv(envAddr, "")

	cfg, err := Get("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 30, cfg.DefaultDays)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestGet_YamlAndEnv(t *testing.T) {
	t.Setenv(envAPIKey, " demo-key ")
	t.Setenv(envAddr, ":9090")

	path := writeConfig(t, `
addr: ":7070"
api_base_url: "http://localhost:1234/api/v3/"
top_n: 10
default_days: 7
log_level: debug
cors_origins: ["https://example.com"]
`)

	cfg, err := Get(path)
	require.NoError(t, err)

	assert.Equal(t, "demo-key", cfg.APIKey)
	assert.Equal(t, ":9090", cfg.Addr, "env overrides file")
	assert.Equal(t, "http://localhost:1234/api/v3", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, 7, cfg.DefaultDays)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultCertCacheDir, cfg.CertCacheDir)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORSOrigins)
}

func TestGet_Errors(t *testing.T) {
	t.Setenv(envAddr, "")

	tests := []struct {
		name    string
		content string
	}{
		{name: "broken yaml", content: "top_n: [1"},
		{name: "top_n too large", content: "top_n: 251"},
		{name: "negative top_n", content: "top_n: -1"},
		{name: "unsupported day range", content: "default_days: 3"},
		{name: "auto tls without domains", content: "auto_tls: true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Get(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Get(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestToTmp_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.TopN = 20
	cfg.AutoTLS = true
	cfg.Domains = []string{"dash.example.com"}

	raw, err := yaml.Marshal(cfg.ToTmp())
	require.NoError(t, err)

	parsed, err := parseYaml(raw)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}
