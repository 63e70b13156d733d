package git

import "errors"

// Closed taxonomy of failure categories the service maps raw go-git errors
// onto. Callers classify with errors.Is.
var (
	ErrNotARepository       = errors.New("not a git repository")
	ErrRepositoryNotFound   = errors.New("repository not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrMergeConflict        = errors.New("merge conflict")
	ErrNonFastForward       = errors.New("non-fast-forward update rejected")
	ErrDirtyWorkTree        = errors.New("working tree has uncommitted changes")
	ErrUnmergedChanges      = errors.New("unmerged changes present")
	ErrRepositoryLocked     = errors.New("repository is locked")
	ErrBranchNotFound       = errors.New("branch not found")
	ErrFileNotFound         = errors.New("file not found")
	ErrNoUpstreamBranch     = errors.New("no upstream branch configured")
	ErrTimeout              = errors.New("operation timeout")
	ErrOperationCancelled   = errors.New("operation cancelled")
)
