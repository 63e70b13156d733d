package repos

import (
	"time"

	"github.com/gitscope/gitscope/internal/snapshots"
	"github.com/google/uuid"
)

// PruneQuery selects how many recent snapshots survive a prune.
type PruneQuery struct {
	Keep int `query:"keep" validate:"min=0,max=10000"`
}

// SnapshotResponse represents a recorded status snapshot.
type SnapshotResponse struct {
	ID     uuid.UUID `json:"id"`
	RepoID uuid.UUID `json:"repo_id"`
	Seq    uint64    `json:"seq"`

	Status StatusResponse `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

type CaptureResponse struct {
	SnapshotResponse

	// Created is false when the status matched the latest snapshot and
	// nothing new was stored.
	Created bool `json:"created"`
}

type PruneResponse struct {
	Deleted int `json:"deleted"`
}

func newSnapshotResponse(snapshot *snapshots.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:     snapshot.ID,
		RepoID: snapshot.RepoID,
		Seq:    snapshot.Seq,

		Status: newStatusResponse(snapshot.Status),

		CreatedAt: snapshot.CreatedAt,
	}
}
