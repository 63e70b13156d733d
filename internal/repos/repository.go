package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	prefix = "repo:"

	prefixByID   = prefix + "id:"
	prefixByName = prefix + "name:"
	prefixByPath = prefix + "path:"
)

type Repository struct {
	db *badger.DB
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// Create registers a new working copy. Names and paths are unique.
func (r *Repository) Create(_ context.Context, draft *RepoDraft) (*Repo, error) {
	model := newRepoModel(draft)

	data, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if _, getErr := txn.Get(r.getByNameKey(model.Name)); getErr == nil {
			return fmt.Errorf("%w: name %q already registered", ErrConflict, model.Name)
		} else if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check name uniqueness: %w", getErr)
		}

		if _, getErr := txn.Get(r.getByPathKey(model.Path)); getErr == nil {
			return fmt.Errorf("%w: path %q already registered", ErrConflict, model.Path)
		} else if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check path uniqueness: %w", getErr)
		}

		if setErr := txn.Set(r.getByIDKey(model.ID), data); setErr != nil {
			return fmt.Errorf("failed to store registration: %w", setErr)
		}

		if crErr := r.createIndexes(txn, model); crErr != nil {
			return fmt.Errorf("failed to create registration indexes: %w", crErr)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to register repository: %w", err)
	}

	return newRepo(model), nil
}

// GetByID retrieves a registration by its ID.
func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*Repo, error) {
	var model *repoModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.getByID(txn, id)
		if err == nil {
			model = found
		}

		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get registration by ID: %w", err)
	}

	return newRepo(model), nil
}

// GetByPath retrieves a registration by its working-copy path.
func (r *Repository) GetByPath(ctx context.Context, path string) (*Repo, error) {
	id, err := r.lookupIndex(r.getByPathKey(path), path)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// GetByName retrieves a registration by its name.
func (r *Repository) GetByName(ctx context.Context, name string) (*Repo, error) {
	id, err := r.lookupIndex(r.getByNameKey(name), name)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Update updates an existing registration. Renames are not allowed.
func (r *Repository) Update(_ context.Context, id uuid.UUID, updater func(*Repo) error) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		old, err := r.getByID(txn, id)
		if err != nil {
			return fmt.Errorf("failed to get registration before update: %w", err)
		}

		repo := newRepo(old)
		if updErr := updater(repo); updErr != nil {
			return fmt.Errorf("failed to update registration: %w", updErr)
		}

		if repo.Name != old.Name {
			return fmt.Errorf("%w: registration renames are not allowed", ErrNotAllowed)
		}
		if repo.Path != old.Path {
			return fmt.Errorf("%w: registration paths are not allowed to change", ErrNotAllowed)
		}

		model := newRepoModel(&repo.RepoDraft)
		model.ID = old.ID
		model.CreatedAt = old.CreatedAt
		model.UpdatedAt = time.Now()

		data, err := json.Marshal(model)
		if err != nil {
			return fmt.Errorf("failed to marshal registration: %w", err)
		}

		if setErr := txn.Set(r.getByIDKey(model.ID), data); setErr != nil {
			return fmt.Errorf("failed to update registration: %w", setErr)
		}

		if rmErr := r.removeIndexes(txn, old); rmErr != nil {
			return fmt.Errorf("failed to remove registration indexes: %w", rmErr)
		}

		if crErr := r.createIndexes(txn, model); crErr != nil {
			return fmt.Errorf("failed to update registration indexes: %w", crErr)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to update registration: %w", err)
	}

	return nil
}

// Delete removes a registration.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		model, err := r.getByID(txn, id)
		if err != nil {
			return fmt.Errorf("failed to get registration before deletion: %w", err)
		}

		if delErr := txn.Delete(r.getByIDKey(id)); delErr != nil && !errors.Is(delErr, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to delete registration: %w", delErr)
		}

		if rmErr := r.removeIndexes(txn, model); rmErr != nil {
			return fmt.Errorf("failed to remove registration indexes: %w", rmErr)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	return nil
}

// List retrieves all registrations.
func (r *Repository) List(_ context.Context) ([]Repo, error) {
	var repositories []Repo

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		keyPrefix := []byte(prefixByID)
		for it.Seek(keyPrefix); it.ValidForPrefix(keyPrefix); it.Next() {
			item := it.Item()

			if err := item.Value(func(val []byte) error {
				var model repoModel
				if err := json.Unmarshal(val, &model); err != nil {
					return fmt.Errorf("failed to unmarshal registration: %w", err)
				}

				repositories = append(repositories, *newRepo(&model))
				return nil
			}); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	return repositories, nil
}

func (r *Repository) getByID(txn *badger.Txn, id uuid.UUID) (*repoModel, error) {
	var model repoModel

	item, err := txn.Get(r.getByIDKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	if valErr := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &model)
	}); valErr != nil {
		return nil, fmt.Errorf("failed to unmarshal registration: %w", valErr)
	}

	return &model, nil
}

func (r *Repository) lookupIndex(key []byte, label string) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, label)
		}
		if err != nil {
			return fmt.Errorf("failed to get registration index: %w", err)
		}

		if valErr := item.Value(func(val []byte) error { return json.Unmarshal(val, &id) }); valErr != nil {
			return fmt.Errorf("failed to get registration ID: %w", valErr)
		}

		return nil
	})

	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to resolve registration index: %w", err)
	}

	return id, nil
}

func (r *Repository) getByIDKey(id uuid.UUID) []byte {
	return []byte(prefixByID + id.String())
}

func (r *Repository) getByNameKey(name string) []byte {
	return []byte(prefixByName + name)
}

func (r *Repository) getByPathKey(path string) []byte {
	return []byte(prefixByPath + path)
}

func (r *Repository) createIndexes(txn *badger.Txn, model *repoModel) error {
	idData, err := json.Marshal(model.ID)
	if err != nil {
		return fmt.Errorf("failed to marshal registration ID: %w", err)
	}

	if setErr := txn.Set(r.getByNameKey(model.Name), idData); setErr != nil {
		return fmt.Errorf("failed to set name index: %w", setErr)
	}
	if setErr := txn.Set(r.getByPathKey(model.Path), idData); setErr != nil {
		return fmt.Errorf("failed to set path index: %w", setErr)
	}

	return nil
}

func (r *Repository) removeIndexes(txn *badger.Txn, model *repoModel) error {
	if err := txn.Delete(r.getByNameKey(model.Name)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete name index: %w", err)
	}
	if err := txn.Delete(r.getByPathKey(model.Path)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete path index: %w", err)
	}

	return nil
}
