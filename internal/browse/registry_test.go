package browse

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsbrowse/internal/config"
)

func staticLoader(roots ...string) config.Loader {
	return func() (*config.Config, error) {
		return &config.Config{AllowedRoots: roots}, nil
	}
}

func TestRegistryAllowedRoots(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	reg := NewRegistry(staticLoader(dir))

	roots, err := reg.AllowedRoots()
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, roots)
}

func TestRegistryReloadsPerCall(t *testing.T) {
	current := []string{"/srv/one"}
	reg := NewRegistry(func() (*config.Config, error) {
		return &config.Config{AllowedRoots: current}, nil
	})

	first, err := reg.DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, "/srv/one", first)

	current = []string{"/srv/two"}

	second, err := reg.DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, "/srv/two", second)
}

func TestRegistryDefaultRootFallback(t *testing.T) {
	reg := NewRegistry(staticLoader())

	root, err := reg.DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, string(filepath.Separator), root)
}

func TestRegistryLoaderError(t *testing.T) {
	loadErr := errors.New("boom")
	reg := NewRegistry(func() (*config.Config, error) {
		return nil, loadErr
	})

	_, err := reg.AllowedRoots()
	assert.ErrorIs(t, err, loadErr)
}
