package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when CONFIG_PATH is unset. A missing default file is
// not an error; settings then come from the environment and tag defaults.
const DefaultPath = "./config.yaml"

// Load builds the configuration with priority ENV > YAML > env-default tags,
// canonicalizes the enumerated settings and validates the result.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	if path == "" {
		path, explicit = DefaultPath, false
	}

	var cfg Config
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.canonicalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// canonicalize trims and lowercases the settings compared against constants,
// so "SQLite" or " RU " from a deployment manifest select the same backend
// and locale as their canonical spelling.
func (c *Config) canonicalize() {
	for _, s := range []*string{
		&c.Database.Driver,
		&c.Chat.Locale,
		&c.Translate.Provider,
		&c.Log.Level,
		&c.Log.Format,
	} {
		*s = strings.ToLower(strings.TrimSpace(*s))
	}
	c.Translate.BaseURL = strings.TrimRight(strings.TrimSpace(c.Translate.BaseURL), "/")
}
