package browse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempRoot(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return dir
}

func entryNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func TestListSortOrder(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "A"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))

	listing, err := List(root, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "a.txt", "b.txt"}, entryNames(listing.Entries))
}

func TestListDirectoriesBeforeFiles(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "aaa"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "zzz"), 0o755))

	listing, err := List(root, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"zzz", "aaa"}, entryNames(listing.Entries))
	assert.True(t, listing.Entries[0].IsDir)
	assert.False(t, listing.Entries[1].IsDir)
}

func TestListEntryMetadata(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "photo.png"), []byte("not really a png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.xyz123"), []byte("?"), 0o644))

	listing, err := List(root, root)
	require.NoError(t, err)
	require.Len(t, listing.Entries, 3)

	byName := map[string]Entry{}
	for _, e := range listing.Entries {
		byName[e.Name] = e
	}

	photo := byName["photo.png"]
	assert.True(t, photo.IsImage)
	require.NotNil(t, photo.Mime)
	assert.Equal(t, "image/png", *photo.Mime)
	assert.Equal(t, int64(16), photo.Size)
	assert.Greater(t, photo.Mtime, float64(0))

	notes := byName["notes.txt"]
	assert.False(t, notes.IsImage)
	require.NotNil(t, notes.Mime)
	assert.Contains(t, *notes.Mime, "text/plain")

	blob := byName["blob.xyz123"]
	assert.Nil(t, blob.Mime)
	assert.False(t, blob.IsImage)
}

func TestListImageFlagFalseForDirectories(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "shots.png"), 0o755))

	listing, err := List(root, root)
	require.NoError(t, err)
	require.Len(t, listing.Entries, 1)
	assert.True(t, listing.Entries[0].IsDir)
	assert.False(t, listing.Entries[0].IsImage)
}

func TestListErrors(t *testing.T) {
	root := tempRoot(t)
	file := filepath.Join(root, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	t.Run("missing path", func(t *testing.T) {
		_, err := List(filepath.Join(root, "nope"), root)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("not a directory", func(t *testing.T) {
		_, err := List(file, root)
		assert.ErrorIs(t, err, ErrNotADirectory)
	})
}

func TestListPermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}

	root := tempRoot(t)
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	_, err := List(locked, root)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestListParent(t *testing.T) {
	root := tempRoot(t)
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	t.Run("present inside root", func(t *testing.T) {
		listing, err := List(sub, root)
		require.NoError(t, err)
		require.NotNil(t, listing.Parent)
		assert.Equal(t, root, *listing.Parent)
	})

	t.Run("absent at the root boundary", func(t *testing.T) {
		listing, err := List(root, root)
		require.NoError(t, err)
		assert.Nil(t, listing.Parent)
	})
}

func TestListEmptyDirectory(t *testing.T) {
	root := tempRoot(t)

	listing, err := List(root, root)
	require.NoError(t, err)
	assert.NotNil(t, listing.Entries)
	assert.Empty(t, listing.Entries)
	assert.Equal(t, root, listing.Path)
}

func TestListToleratesDanglingSymlink(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "ok.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	listing, err := List(root, root)
	require.NoError(t, err)
	assert.Contains(t, entryNames(listing.Entries), "ok.txt")
}
