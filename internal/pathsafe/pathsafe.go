// Package pathsafe canonicalizes client-supplied paths and decides
// whether they stay inside an allowed root directory.
//
// Canonicalization resolves ".", ".." and symlinks to the filesystem's
// real identity, so two spellings of the same location compare equal.
// Containment is decided on path segments, never on raw string
// prefixes: /data-backup is not inside /data.
package pathsafe

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// Canonicalize returns the absolute, symlink-resolved form of path.
//
// Paths whose trailing components do not exist are tolerated: the
// deepest existing ancestor is resolved and the remaining components
// are re-joined, producing a best-effort canonical form. Existence is a
// separate concern checked by callers.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	// Walk up to the deepest existing ancestor, resolve it, then
	// re-attach the missing components.
	var missing []string
	prefix := abs
	for {
		parent := filepath.Dir(prefix)
		if parent == prefix {
			return abs, nil
		}
		missing = append(missing, filepath.Base(prefix))
		prefix = parent

		resolved, err = filepath.EvalSymlinks(prefix)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	for i := len(missing) - 1; i >= 0; i-- {
		resolved = filepath.Join(resolved, missing[i])
	}

	return resolved, nil
}

// Resolve canonicalizes requested against root.
//
// An empty requested path means the root itself. A relative path is
// joined under root before canonicalization. An absolute path is
// canonicalized directly; root still gates it later via Check.
func Resolve(requested, root string) (string, error) {
	if requested == "" {
		return Canonicalize(root)
	}
	if !filepath.IsAbs(requested) {
		return Canonicalize(filepath.Join(root, requested))
	}
	return Canonicalize(requested)
}

// Verdict is the outcome of a containment check.
type Verdict int

const (
	// NotContained means the candidate resolved outside the root.
	NotContained Verdict = iota

	// Contained means the candidate equals the root or the root is a
	// strict ancestor of the candidate.
	Contained

	// ResolveFailed means canonicalization errored; the check fails
	// closed and the candidate is treated as outside the root.
	ResolveFailed
)

// Within reports whether the verdict admits the candidate.
func (v Verdict) Within() bool {
	return v == Contained
}

func (v Verdict) String() string {
	switch v {
	case Contained:
		return "contained"
	case NotContained:
		return "not contained"
	case ResolveFailed:
		return "resolve failed"
	default:
		return "unknown"
	}
}

// Check reports whether candidate lies at or below root. Both paths
// are canonicalized before comparison.
//
// The comparison computes the relative path from root to candidate and
// inspects its leading segment, avoiding unsafe prefix checks such as
// strings.HasPrefix(candidate, root) which admit sibling directories
// that merely share a prefix.
func Check(candidate, root string) Verdict {
	cand, err := Canonicalize(candidate)
	if err != nil {
		return ResolveFailed
	}
	canonRoot, err := Canonicalize(root)
	if err != nil {
		return ResolveFailed
	}

	rel, err := filepath.Rel(canonRoot, cand)
	if err != nil {
		return NotContained
	}
	if rel == "." {
		return Contained
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return NotContained
	}
	if filepath.IsAbs(rel) {
		return NotContained
	}

	return Contained
}
