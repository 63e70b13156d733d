package git

import (
	"reflect"
	"strings"
	"time"
)

// Repository represents a local Git working copy. Two repositories are the
// same repository iff their root URIs are equal.
type Repository struct {
	RootURI string // Root of the working copy
}

// RelativePath derives the path of a resource relative to the repository
// root by stripping the root URI plus one separator. URIs outside the
// repository are returned unchanged.
func (r Repository) RelativePath(uri string) string {
	root := strings.TrimSuffix(r.RootURI, "/")
	if uri == root {
		return ""
	}
	return strings.TrimPrefix(uri, root+"/")
}

// Contains reports whether the resource URI is the repository root or
// nested under it.
func (r Repository) Contains(uri string) bool {
	root := strings.TrimSuffix(r.RootURI, "/")
	return uri == root || strings.HasPrefix(uri, root+"/")
}

// BranchType distinguishes local branches from remote-tracking ones.
type BranchType int

const (
	BranchLocal BranchType = iota
	BranchRemote
)

// Branch represents a Git branch reference.
type Branch struct {
	Name     string     // Short branch name
	Upstream string     // Upstream branch name, empty when none is configured
	Type     BranchType // Local or remote
	Tip      *Commit    // Commit the branch points at
	Remote   string     // Remote name for remote or tracking branches
}

// CommitIdentity identifies the author of a commit.
type CommitIdentity struct {
	Name  string
	Email string
	When  time.Time
}

// Commit represents a single commit.
type Commit struct {
	SHA        string
	Summary    string // First line of the commit message
	Body       string // Remainder of the message, empty for one-liners
	Author     CommitIdentity
	ParentSHAs []string
}

// CommittedFileChange is a file change attributed to a commit.
type CommittedFileChange struct {
	FileChange

	CommitSHA string
}

// CommitWithChanges is a commit together with the file changes it introduced.
type CommitWithChanges struct {
	Commit

	Changes []CommittedFileChange
}

// FileChange describes a single file's modification within a status or
// commit snapshot.
type FileChange struct {
	URI         string
	Status      FileStatus
	PreviousURI string // Set for renames and copies
	Staged      *bool  // Nil when the staged/unstaged distinction does not apply
}

// AheadBehind is the commit distance between a branch and its upstream.
type AheadBehind struct {
	Ahead  int
	Behind int
}

// WorkingDirectoryStatus is a snapshot of a repository's change-state at a
// point in time.
type WorkingDirectoryStatus struct {
	Exists         bool // False when the location holds no repository
	Changes        []FileChange
	BranchName     string // Empty on a detached HEAD
	UpstreamBranch string
	AheadBehind    *AheadBehind
	SHA            string // HEAD commit, empty in an unborn repository
}

// An absent ahead/behind pair compares as (-1, -1) so it never collides with
// a real distance.
var noAheadBehind = AheadBehind{Ahead: -1, Behind: -1}

func (s *WorkingDirectoryStatus) aheadBehind() AheadBehind {
	if s.AheadBehind == nil {
		return noAheadBehind
	}
	return *s.AheadBehind
}

// Equal reports whether two status snapshots are structurally equal. Either
// side may be nil; two nil snapshots are equal, a nil and a non-nil one are
// not. Cheap field comparisons run first, a full structural comparison
// settles the rest.
func (s *WorkingDirectoryStatus) Equal(other *WorkingDirectoryStatus) bool {
	if s == nil || other == nil {
		return s == other
	}

	if s.Exists != other.Exists ||
		s.BranchName != other.BranchName ||
		s.UpstreamBranch != other.UpstreamBranch ||
		s.SHA != other.SHA ||
		s.aheadBehind() != other.aheadBehind() ||
		len(s.Changes) != len(other.Changes) {
		return false
	}

	return reflect.DeepEqual(s, other)
}

// BlameLine attributes one line of a file to a commit. Line numbers are
// 1-based, matching git's own numbering.
type BlameLine struct {
	SHA  string
	Line int
}

// FileBlame is the per-line attribution of a file's contents to commits.
type FileBlame struct {
	URI     string
	Commits []Commit // Unique contributing commits
	Lines   []BlameLine
}
