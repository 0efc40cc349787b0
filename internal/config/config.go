// Package config loads the fsbrowse configuration file.
//
// The configuration recognizes a single option:
//
//	allowed_roots:
//	  - /srv/data
//	  - /var/log
//
// an ordered list of absolute directory paths the server will offer for
// browsing. A missing configuration file is not an error; it yields an
// empty list, in which case the server falls back to the filesystem
// top-level as its default root.
//
// Load builds a fresh viper instance on every call so that edits to the
// file are observed by subsequent loads without a restart. Callers that
// need live-reload semantics hold a Loader rather than a Config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the parsed configuration.
type Config struct {
	// AllowedRoots is the ordered list of directories offered for
	// browsing. Each entry must be an absolute path.
	AllowedRoots []string `mapstructure:"allowed_roots" validate:"dive,required"`
}

// Loader produces a freshly loaded configuration. Handlers receive a
// Loader rather than a Config so that file edits take effect per
// request.
type Loader func() (*Config, error)

// FileLoader returns a Loader bound to the given config file path.
func FileLoader(path string) Loader {
	return func() (*Config, error) {
		return Load(path)
	}
}

// Load reads and validates the configuration at path. A missing file
// yields an empty configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{AllowedRoots: []string{}}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.AllowedRoots == nil {
		cfg.AllowedRoots = []string{}
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// validateRootPaths rejects relative allowed_roots entries.
func validateRootPaths(cfg *Config) error {
	for i, root := range cfg.AllowedRoots {
		if !filepath.IsAbs(root) {
			return fmt.Errorf("allowed_roots[%d]: %q is not an absolute path", i, root)
		}
	}
	return nil
}
