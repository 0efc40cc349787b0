package browse

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"fsbrowse/internal/pathsafe"
)

// MaxPreviewBytes caps how much of a file the text preview returns.
const MaxPreviewBytes = 512 * 1024

// ResolveTarget resolves requested against root and enforces
// containment. The root must name an existing directory.
func ResolveTarget(root, requested string) (string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", ErrInvalidRoot
	}

	target, err := pathsafe.Resolve(requested, root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolve, err)
	}

	if !pathsafe.Check(target, root).Within() {
		return "", ErrOutsideRoot
	}

	return target, nil
}

// ValidateFileTarget is the shared precondition for raw file access and
// text preview: a path must be supplied, resolve under root, and pass
// the containment gate.
func ValidateFileTarget(root, requested string) (string, error) {
	if strings.TrimSpace(requested) == "" {
		return "", ErrMissingPath
	}
	return ResolveTarget(root, requested)
}

// StatFile confirms target is an existing regular file and re-verifies
// containment immediately before the caller opens it, narrowing the
// window between request validation and actual file access.
func StatFile(target, root string) (os.FileInfo, error) {
	info, err := os.Stat(target)
	if err != nil || !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}

	if !pathsafe.Check(target, root).Within() {
		return nil, ErrOutsideRoot
	}

	return info, nil
}

// PreviewResult is a bounded, best-effort UTF-8 rendering of a file.
type PreviewResult struct {
	Path      string `json:"path"`
	Content   string `json:"content"`
	Encoding  string `json:"encoding"`
	Truncated bool   `json:"truncated"`
	MaxBytes  int    `json:"max_bytes"`
}

// Preview reads at most MaxPreviewBytes of target. One extra byte is
// read to detect truncation without pulling in an entire large file.
// Invalid UTF-8 sequences are replaced with U+FFFD; decoding never
// fails. I/O failures during the read surface as ErrRead, distinct
// from a missing file.
func Preview(target, root string) (*PreviewResult, error) {
	if _, err := StatFile(target, root); err != nil {
		return nil, err
	}

	f, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxPreviewBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	truncated := len(raw) > MaxPreviewBytes
	if truncated {
		raw = raw[:MaxPreviewBytes]
	}

	return &PreviewResult{
		Path:      target,
		Content:   strings.ToValidUTF8(string(raw), "�"),
		Encoding:  "utf-8",
		Truncated: truncated,
		MaxBytes:  MaxPreviewBytes,
	}, nil
}
