package snapshots

import (
	"time"

	"github.com/gitscope/gitscope/internal/git"
	"github.com/google/uuid"
)

// Snapshot is a recorded working-directory status of a registered
// repository. Consecutive snapshots always differ structurally; captures
// that equal the latest recorded status are not stored.
type Snapshot struct {
	ID     uuid.UUID
	RepoID uuid.UUID
	Seq    uint64 // Monotonic per repository

	Status *git.WorkingDirectoryStatus

	CreatedAt time.Time
}
