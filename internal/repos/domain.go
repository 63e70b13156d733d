package repos

import (
	"context"
	"time"

	"github.com/gitscope/gitscope/internal/git"
	"github.com/google/uuid"
)

type RepoDraft struct {
	// Basic Information
	Name        string
	Description string

	// Working copy location
	Path string // Absolute path to the working copy root

	// AllowMissing registers a path that does not hold a repository yet.
	AllowMissing bool
}

type Repo struct {
	RepoDraft

	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository returns the working-copy value for this registration.
func (r *Repo) Repository() git.Repository {
	return git.Repository{RootURI: r.Path}
}

// LogOptions narrows a history request for a registered repository.
type LogOptions struct {
	Ref      string
	MaxCount int
}

// BlameOptions narrows a blame request for a registered repository.
type BlameOptions struct {
	File string
	Ref  string
}

// GitService represents the inspection surface the registry consumes.
type GitService interface {
	// Status builds a working-directory status snapshot.
	Status(ctx context.Context, path string) (*git.WorkingDirectoryStatus, error)

	// Branches lists local and remote-tracking branches.
	Branches(ctx context.Context, path string) ([]git.Branch, error)

	// Log walks commit history with per-commit file changes.
	Log(ctx context.Context, path string, opts LogOptions) ([]git.CommitWithChanges, error)

	// Blame attributes a file's lines to commits.
	Blame(ctx context.Context, path string, opts BlameOptions) (*git.FileBlame, error)

	// RepositoryExists checks whether a repository exists at the path.
	RepositoryExists(path string) bool
}
