package opener

import (
	"github.com/gitscope/gitscope/internal/opener"
	"github.com/google/uuid"
)

// OpenQuery identifies the resource to resolve.
type OpenQuery struct {
	URI  string `query:"uri"  validate:"required,min=1,max=4096"`
	Line int    `query:"line" validate:"omitempty,min=1"`
}

// LocationResponse represents a resolved resource location.
type LocationResponse struct {
	RepoID       uuid.UUID `json:"repo_id"`
	Root         string    `json:"root"`
	RelativePath string    `json:"relative_path"`
	Line         int       `json:"line,omitempty"`
	EditorURL    string    `json:"editor_url"`
}

type CheckResponse struct {
	Handled bool `json:"handled"`
}

func newLocationResponse(location *opener.Location) LocationResponse {
	return LocationResponse{
		RepoID:       location.RepoID,
		Root:         location.Repository.RootURI,
		RelativePath: location.RelativePath,
		Line:         location.Line,
		EditorURL:    location.EditorURL,
	}
}
