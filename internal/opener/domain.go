package opener

import (
	"context"

	"github.com/gitscope/gitscope/internal/git"
	"github.com/google/uuid"
)

// ResourceHandler decides whether a resource URI can be handled by this
// opener.
type ResourceHandler interface {
	// CanHandle reports whether the URI lies inside a registered
	// repository.
	CanHandle(ctx context.Context, uri string) bool
}

// URIOpener resolves a resource URI to an openable location.
type URIOpener interface {
	// Open resolves the URI against the registered repositories.
	Open(ctx context.Context, req OpenRequest) (*Location, error)
}

// OpenRequest identifies a resource to open, optionally at a line.
type OpenRequest struct {
	URI  string
	Line int // 1-based, 0 when unset
}

// Location is a resolved resource inside a registered repository.
type Location struct {
	RepoID       uuid.UUID
	Repository   git.Repository
	RelativePath string
	Line         int

	// EditorURL is a deep link the host editor understands.
	EditorURL string
}
