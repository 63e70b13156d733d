package repos

import (
	"context"

	"github.com/gitscope/gitscope/internal/git"
	gogit "github.com/go-git/go-git/v6"
)

// gitAdapter adapts the git.Service to the repos.GitService interface.
type gitAdapter struct {
	gitSvc *git.Service
}

// NewGitAdapter creates a new Git adapter.
func NewGitAdapter(gitSvc *git.Service) GitService {
	return &gitAdapter{gitSvc: gitSvc}
}

// Status builds a working-directory status snapshot.
func (a *gitAdapter) Status(ctx context.Context, path string) (*git.WorkingDirectoryStatus, error) {
	return a.gitSvc.Status(ctx, path)
}

// Branches lists local and remote-tracking branches.
func (a *gitAdapter) Branches(ctx context.Context, path string) ([]git.Branch, error) {
	return a.gitSvc.Branches(ctx, path)
}

// Log walks commit history with per-commit file changes.
func (a *gitAdapter) Log(ctx context.Context, path string, opts LogOptions) ([]git.CommitWithChanges, error) {
	req := git.LogRequest{
		Path:     path,
		Ref:      opts.Ref,
		MaxCount: opts.MaxCount,
	}

	return a.gitSvc.Log(ctx, req)
}

// Blame attributes a file's lines to commits.
func (a *gitAdapter) Blame(ctx context.Context, path string, opts BlameOptions) (*git.FileBlame, error) {
	req := git.BlameRequest{
		Path: path,
		File: opts.File,
		Ref:  opts.Ref,
	}

	return a.gitSvc.Blame(ctx, req)
}

// RepositoryExists checks whether a repository, bare or not, can be opened
// at the path.
func (a *gitAdapter) RepositoryExists(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}
