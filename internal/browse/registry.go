package browse

import (
	"path/filepath"

	"fsbrowse/internal/config"
	"fsbrowse/internal/pathsafe"
)

// Registry supplies the current set of allowed roots. It holds a
// config.Loader rather than a loaded configuration and reloads on every
// call, so edits to the allow-list take effect without a restart.
//
// The registry does not check that configured roots exist; that happens
// at the point of use, where a missing root fails the request.
type Registry struct {
	load config.Loader
}

// NewRegistry returns a registry backed by the given loader.
func NewRegistry(load config.Loader) *Registry {
	return &Registry{load: load}
}

// AllowedRoots reloads the configuration and returns the configured
// roots in order, canonicalized best-effort.
func (r *Registry) AllowedRoots() ([]string, error) {
	cfg, err := r.load()
	if err != nil {
		return nil, err
	}

	roots := make([]string, 0, len(cfg.AllowedRoots))
	for _, root := range cfg.AllowedRoots {
		canonical, err := pathsafe.Canonicalize(root)
		if err != nil {
			canonical = filepath.Clean(root)
		}
		roots = append(roots, canonical)
	}

	return roots, nil
}

// DefaultRoot returns the first configured root, or the filesystem
// top-level when none are configured.
func (r *Registry) DefaultRoot() (string, error) {
	roots, err := r.AllowedRoots()
	if err != nil {
		return "", err
	}
	if len(roots) == 0 {
		return string(filepath.Separator), nil
	}
	return roots[0], nil
}
