package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/gitscope/gitscope/internal/git"
	"github.com/google/uuid"
)

const prefixByRepo = "snapshot:repo:"

// seekEnd sorts after any zero-padded sequence number
const seekEnd = byte(0xFF)

type Repository struct {
	db *badger.DB
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// Create stores a new snapshot with the next sequence number for the
// repository.
func (r *Repository) Create(_ context.Context, repoID uuid.UUID, status *git.WorkingDirectoryStatus) (*Snapshot, error) {
	model := newSnapshotModel(repoID, status)

	err := r.db.Update(func(txn *badger.Txn) error {
		last, err := r.latest(txn, repoID)
		if err != nil && !errors.Is(err, ErrNoSnapshots) {
			return err
		}
		if last != nil {
			model.Seq = last.Seq + 1
		}

		data, err := json.Marshal(model)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		if setErr := txn.Set(r.key(repoID, model.Seq), data); setErr != nil {
			return fmt.Errorf("failed to store snapshot: %w", setErr)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	return newSnapshot(model), nil
}

// Latest retrieves the most recent snapshot for a repository.
func (r *Repository) Latest(_ context.Context, repoID uuid.UUID) (*Snapshot, error) {
	var model *snapshotModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.latest(txn, repoID)
		if err == nil {
			model = found
		}

		return err
	})

	if err != nil {
		return nil, err
	}

	return newSnapshot(model), nil
}

// ListByRepo retrieves all snapshots for a repository, oldest first.
func (r *Repository) ListByRepo(_ context.Context, repoID uuid.UUID) ([]Snapshot, error) {
	var result []Snapshot

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		keyPrefix := r.repoPrefix(repoID)
		for it.Seek(keyPrefix); it.ValidForPrefix(keyPrefix); it.Next() {
			item := it.Item()

			if err := item.Value(func(val []byte) error {
				var model snapshotModel
				if err := json.Unmarshal(val, &model); err != nil {
					return fmt.Errorf("failed to unmarshal snapshot: %w", err)
				}

				result = append(result, *newSnapshot(&model))
				return nil
			}); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return result, nil
}

// Prune deletes all but the most recent keep snapshots of a repository.
// It returns the number of snapshots deleted.
func (r *Repository) Prune(_ context.Context, repoID uuid.UUID, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	deleted := 0
	err := r.db.Update(func(txn *badger.Txn) error {
		keys := r.collectKeys(txn, repoID)

		if len(keys) <= keep {
			return nil
		}

		for _, key := range keys[:len(keys)-keep] {
			if delErr := txn.Delete(key); delErr != nil {
				return fmt.Errorf("failed to delete snapshot: %w", delErr)
			}
			deleted++
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}

	return deleted, nil
}

// DeleteByRepo removes every snapshot of a repository.
func (r *Repository) DeleteByRepo(ctx context.Context, repoID uuid.UUID) error {
	if _, err := r.Prune(ctx, repoID, 0); err != nil {
		return err
	}
	return nil
}

func (r *Repository) collectKeys(txn *badger.Txn, repoID uuid.UUID) [][]byte {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	keyPrefix := r.repoPrefix(repoID)
	var keys [][]byte
	for it.Seek(keyPrefix); it.ValidForPrefix(keyPrefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}

	return keys
}

func (r *Repository) latest(txn *badger.Txn, repoID uuid.UUID) (*snapshotModel, error) {
	opts := badger.DefaultIteratorOptions
	opts.Reverse = true

	it := txn.NewIterator(opts)
	defer it.Close()

	keyPrefix := r.repoPrefix(repoID)
	seek := append(append([]byte{}, keyPrefix...), seekEnd)

	it.Seek(seek)
	if !it.ValidForPrefix(keyPrefix) {
		return nil, fmt.Errorf("%w: repository %s", ErrNoSnapshots, repoID.String())
	}

	var model snapshotModel
	if err := it.Item().Value(func(val []byte) error {
		return json.Unmarshal(val, &model)
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &model, nil
}

// key encodes the sequence number zero-padded so the lexicographic key
// order matches the numeric order.
func (r *Repository) key(repoID uuid.UUID, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", prefixByRepo, repoID.String(), seq))
}

func (r *Repository) repoPrefix(repoID uuid.UUID) []byte {
	return []byte(prefixByRepo + repoID.String() + ":")
}
