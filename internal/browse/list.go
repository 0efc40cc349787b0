package browse

import (
	"errors"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fsbrowse/internal/pathsafe"
)

// Entry describes one child of a listed directory.
type Entry struct {
	Name    string  `json:"name"`
	IsDir   bool    `json:"is_dir"`
	Size    int64   `json:"size"`
	IsImage bool    `json:"is_image"`
	Mime    *string `json:"mime"`
	Mtime   float64 `json:"mtime"`
}

// Listing is the result of enumerating a directory. Parent is nil when
// the listed path sits at the root boundary.
type Listing struct {
	Path    string  `json:"path"`
	Parent  *string `json:"parent"`
	Entries []Entry `json:"entries"`
}

// List enumerates the immediate children of path, which must be an
// existing directory already validated against root.
//
// A child whose metadata cannot be read is omitted rather than failing
// the whole listing. Entries are ordered directories first, then files,
// case-insensitively by name within each group.
func List(path, root string) (*Listing, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, ErrPermissionDenied
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrNotADirectory
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, ErrPermissionDenied
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		info, err := entry.Info()
		if err != nil {
			// Skip unreadable entries.
			continue
		}

		isDir := entry.IsDir()
		mimeType := MimeType(entry.Name())
		entries = append(entries, Entry{
			Name:    entry.Name(),
			IsDir:   isDir,
			Size:    info.Size(),
			IsImage: !isDir && mimeType != nil && strings.HasPrefix(*mimeType, "image/"),
			Mime:    mimeType,
			Mtime:   unixSeconds(info.ModTime()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}

		left := strings.ToLower(entries[i].Name)
		right := strings.ToLower(entries[j].Name)

		return left < right
	})

	return &Listing{
		Path:    path,
		Parent:  parentWithin(path, root),
		Entries: entries,
	}, nil
}

// parentWithin returns the canonical parent of path when it is distinct
// from path and still contained in root, nil otherwise.
func parentWithin(path, root string) *string {
	parent, err := pathsafe.Canonicalize(filepath.Dir(path))
	if err != nil {
		return nil
	}
	if parent == path {
		return nil
	}
	if !pathsafe.Check(parent, root).Within() {
		return nil
	}
	return &parent
}

// MimeType guesses a MIME type from the file name extension alone; it
// never reads content. Returns nil when the extension is unknown.
func MimeType(name string) *string {
	t := mime.TypeByExtension(filepath.Ext(name))
	if t == "" {
		return nil
	}
	return &t
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
