package db

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey signals a unique-constraint violation. The reconciler
	// depends on being able to tell this apart from every other failure.
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInternal     = errors.New("internal database error")
)

// DB is the full data-access surface of the application. The sqlite
// implementation lives in the impl subpackage; tests substitute the
// narrower per-concern interfaces.
type DB interface {
	Profiles
	Thoughts
	Follows
	Notifications
	Bookmarks
}
