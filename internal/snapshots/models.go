package snapshots

import (
	"time"

	"github.com/gitscope/gitscope/internal/git"
	"github.com/gitscope/gitscope/internal/storage"
	"github.com/google/uuid"
)

// snapshotModel represents a stored status snapshot.
type snapshotModel struct {
	storage.BaseEntity

	RepoID uuid.UUID `json:"repo_id"`
	Seq    uint64    `json:"seq"`

	Status *git.WorkingDirectoryStatus `json:"status"`
}

func newSnapshotModel(repoID uuid.UUID, status *git.WorkingDirectoryStatus) *snapshotModel {
	return &snapshotModel{
		BaseEntity: storage.BaseEntity{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RepoID: repoID,
		Status: status,
	}
}

func newSnapshot(model *snapshotModel) *Snapshot {
	if model == nil {
		return nil
	}

	return &Snapshot{
		ID:        model.ID,
		RepoID:    model.RepoID,
		Seq:       model.Seq,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
	}
}
