package browse

import "errors"

// Sentinel errors for the browsing operations. The HTTP layer maps
// each to a status code; wrap with fmt.Errorf("%w: ...") to attach
// detail without losing the category.
var (
	ErrInvalidRoot      = errors.New("root must be an existing directory")
	ErrOutsideRoot      = errors.New("path is outside the chosen root")
	ErrMissingPath      = errors.New("missing path")
	ErrNotFound         = errors.New("path not found")
	ErrNotADirectory    = errors.New("path is not a directory")
	ErrPermissionDenied = errors.New("permission denied")
	ErrRead             = errors.New("unable to read file")
	ErrResolve          = errors.New("unable to resolve path")
)
