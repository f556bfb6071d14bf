package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestReadConfigFile(t *testing.T) {
	path := writeFile(t, "config.yml", "domain: example.com\nsecure: true\nformat: json\nlog-level: debug\n")

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Domain:   "example.com",
		Path:     "/",
		Secure:   true,
		Origin:   true,
		Format:   "json",
		LogLevel: "debug",
	}, cfg)
}

func TestReadConfigEnv(t *testing.T) {
	path := writeFile(t, "config.yml", "domain: example.com\n")
	t.Setenv("COOKIECHECK_DOMAIN", "b.a")
	t.Setenv("COOKIECHECK_ORIGIN", "false")
	t.Setenv("COOKIECHECK_LOG_LEVEL", "warn")

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "b.a", cfg.Domain)
	assert.False(t, cfg.Origin)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/", cfg.Path)
}

func TestReadConfigErrors(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadConfig(writeFile(t, "bad.yml", "domain: [unclosed"))
	assert.Error(t, err)

	t.Setenv("COOKIECHECK_SECURE", "maybe")
	_, err = ReadConfig("")
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/.config/cookiecheck.yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config/cookiecheck.yml"), got)

	got, err = expandPath("/etc/cookiecheck.yml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/cookiecheck.yml", got)
}

func TestBadLogLevel(t *testing.T) {
	t.Setenv("COOKIECHECK_LOG_LEVEL", "loud")
	_, _, err := run(t, "", "parse", "a=1")
	assert.Error(t, err)
}
