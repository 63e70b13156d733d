package repos

import (
	"time"

	"github.com/gitscope/gitscope/internal/git"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// POSTRequest represents the request payload for registering a repository.
type POSTRequest struct {
	Name        string `json:"name"          validate:"required,min=1,max=100"`
	Description string `json:"description"   validate:"max=500"`
	Path        string `json:"path"          validate:"required,min=1,max=4096"`

	// AllowMissing registers a path that does not hold a repository yet.
	AllowMissing bool `json:"allow_missing"`
}

// PATCHRequest represents the request payload for updating a registration.
type PATCHRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// RepoResponse represents the response payload for a registration.
type RepoResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`

	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LogQuery narrows a history request.
type LogQuery struct {
	Ref      string `query:"ref"       validate:"max=255"`
	MaxCount int    `query:"max_count" validate:"omitempty,min=1,max=1000"`
}

// BlameQuery selects the file to attribute.
type BlameQuery struct {
	File string `query:"file" validate:"required,min=1,max=4096"`
	Ref  string `query:"ref"  validate:"max=255"`
}

type AheadBehindResponse struct {
	Ahead  int `json:"ahead"`
	Behind int `json:"behind"`
}

type FileChangeResponse struct {
	URI          string `json:"uri"`
	Status       string `json:"status"`
	Abbreviation string `json:"abbreviation"`
	PreviousURI  string `json:"previous_uri,omitempty"`
	Staged       *bool  `json:"staged,omitempty"`
}

// StatusResponse represents a working-directory status snapshot.
type StatusResponse struct {
	Exists         bool                 `json:"exists"`
	Changes        []FileChangeResponse `json:"changes"`
	BranchName     string               `json:"branch_name,omitempty"`
	UpstreamBranch string               `json:"upstream_branch,omitempty"`
	AheadBehind    *AheadBehindResponse `json:"ahead_behind,omitempty"`
	SHA            string               `json:"sha,omitempty"`
}

type IdentityResponse struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	When  time.Time `json:"when"`
}

type CommitResponse struct {
	SHA     string           `json:"sha"`
	Summary string           `json:"summary"`
	Body    string           `json:"body,omitempty"`
	Author  IdentityResponse `json:"author"`
	Parents []string         `json:"parents"`
}

type CommitWithChangesResponse struct {
	CommitResponse

	Changes []FileChangeResponse `json:"changes"`
}

type BranchResponse struct {
	Name     string          `json:"name"`
	Upstream string          `json:"upstream,omitempty"`
	Type     string          `json:"type"`
	Tip      *CommitResponse `json:"tip,omitempty"`
	Remote   string          `json:"remote,omitempty"`
}

type BlameLineResponse struct {
	SHA  string `json:"sha"`
	Line int    `json:"line"`
}

// BlameResponse represents the per-line attribution of a file.
type BlameResponse struct {
	URI     string              `json:"uri"`
	Commits []CommitResponse    `json:"commits"`
	Lines   []BlameLineResponse `json:"lines"`
}

func newStatusResponse(status *git.WorkingDirectoryStatus) StatusResponse {
	response := StatusResponse{
		Exists:         status.Exists,
		Changes:        lo.Map(status.Changes, func(change git.FileChange, _ int) FileChangeResponse { return newFileChangeResponse(change) }),
		BranchName:     status.BranchName,
		UpstreamBranch: status.UpstreamBranch,
		SHA:            status.SHA,
	}

	if status.AheadBehind != nil {
		response.AheadBehind = &AheadBehindResponse{
			Ahead:  status.AheadBehind.Ahead,
			Behind: status.AheadBehind.Behind,
		}
	}

	return response
}

func newFileChangeResponse(change git.FileChange) FileChangeResponse {
	staged := change.Staged != nil && *change.Staged

	return FileChangeResponse{
		URI:          change.URI,
		Status:       change.Status.Text(staged),
		Abbreviation: change.Status.Abbreviation(staged),
		PreviousURI:  change.PreviousURI,
		Staged:       change.Staged,
	}
}

func newCommitResponse(commit git.Commit) CommitResponse {
	return CommitResponse{
		SHA:     commit.SHA,
		Summary: commit.Summary,
		Body:    commit.Body,
		Author: IdentityResponse{
			Name:  commit.Author.Name,
			Email: commit.Author.Email,
			When:  commit.Author.When,
		},
		Parents: commit.ParentSHAs,
	}
}

func newCommitWithChangesResponse(commit git.CommitWithChanges) CommitWithChangesResponse {
	return CommitWithChangesResponse{
		CommitResponse: newCommitResponse(commit.Commit),
		Changes: lo.Map(commit.Changes, func(change git.CommittedFileChange, _ int) FileChangeResponse {
			return newFileChangeResponse(change.FileChange)
		}),
	}
}

func newBranchResponse(branch git.Branch) BranchResponse {
	response := BranchResponse{
		Name:     branch.Name,
		Upstream: branch.Upstream,
		Type:     branchTypeText(branch.Type),
		Remote:   branch.Remote,
	}

	if branch.Tip != nil {
		tip := newCommitResponse(*branch.Tip)
		response.Tip = &tip
	}

	return response
}

func branchTypeText(t git.BranchType) string {
	if t == git.BranchRemote {
		return "remote"
	}
	return "local"
}

func newBlameResponse(blame *git.FileBlame) BlameResponse {
	return BlameResponse{
		URI:     blame.URI,
		Commits: lo.Map(blame.Commits, func(commit git.Commit, _ int) CommitResponse { return newCommitResponse(commit) }),
		Lines: lo.Map(blame.Lines, func(line git.BlameLine, _ int) BlameLineResponse {
			return BlameLineResponse{SHA: line.SHA, Line: line.Line}
		}),
	}
}
