package repos

import (
	"time"

	"github.com/gitscope/gitscope/internal/storage"
	"github.com/google/uuid"
)

// repoModel represents a registered working copy.
type repoModel struct {
	storage.BaseEntity

	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"` // Working copy root
}

func newRepoModel(draft *RepoDraft) *repoModel {
	if draft == nil {
		return nil
	}

	return &repoModel{
		BaseEntity: storage.BaseEntity{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        draft.Name,
		Description: draft.Description,
		Path:        draft.Path,
	}
}

func newRepo(model *repoModel) *Repo {
	if model == nil {
		return nil
	}

	return &Repo{
		RepoDraft: RepoDraft{
			Name:        model.Name,
			Description: model.Description,
			Path:        model.Path,
		},
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
