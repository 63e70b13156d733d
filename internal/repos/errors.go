package repos

import "errors"

var (
	ErrNotFound   = errors.New("repository registration not found")
	ErrConflict   = errors.New("repository already registered")
	ErrNotAllowed = errors.New("operation not allowed")
)
