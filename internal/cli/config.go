package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// envPrefix prefixes every environment variable read into Config.
const envPrefix = "COOKIECHECK_"

// Config holds the defaults of the cookiecheck commands. Values are read
// from the YAML file first, then from COOKIECHECK_* environment variables.
// Command line flags override both.
type Config struct {
	// Domain is the request host used by match.
	Domain string `yaml:"domain" env:"DOMAIN"`
	// Path is the request path used by match.
	Path string `yaml:"path" env:"PATH"`
	// Secure marks the request as sent over https.
	Secure bool `yaml:"secure" env:"SECURE"`
	// Origin assigns the request host to cookies without a Domain.
	Origin bool `yaml:"origin" env:"ORIGIN"`
	// Format is the output format: text, header or json.
	Format string `yaml:"format" env:"FORMAT"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		Origin:   true,
		Format:   formatText,
		LogLevel: "info",
	}
}

// ReadConfig loads the YAML file at path over DefaultConfig and applies the
// environment. An empty path skips the file.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		file, err := expandPath(path)
		if err != nil {
			return cfg, err
		}
		data, err := os.ReadFile(file) //nolint:gosec
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", file, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// expandPath replaces a leading "~" with the home directory.
func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Join(errors.New("cannot expand ~"), err)
	}
	return filepath.Join(home, path[1:]), nil
}
