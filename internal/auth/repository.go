package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	prefixUserByID   = "user:id:"
	prefixUserByName = "user:name:"
)

type userRepository struct {
	db *badger.DB
}

func newUserRepository(db *badger.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// Create stores a new user. Names are unique.
func (r *userRepository) Create(_ context.Context, model *userModel) error {
	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		nameKey := []byte(prefixUserByName + model.Name)
		if _, getErr := txn.Get(nameKey); getErr == nil {
			return fmt.Errorf("%w: %q", ErrDuplicateUser, model.Name)
		} else if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check name uniqueness: %w", getErr)
		}

		if setErr := txn.Set([]byte(prefixUserByID+model.ID.String()), data); setErr != nil {
			return fmt.Errorf("failed to store user: %w", setErr)
		}

		idData, idErr := json.Marshal(model.ID)
		if idErr != nil {
			return fmt.Errorf("failed to marshal user ID: %w", idErr)
		}
		if setErr := txn.Set(nameKey, idData); setErr != nil {
			return fmt.Errorf("failed to set name index: %w", setErr)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	var model userModel

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixUserByID + id.String()))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrUserNotFound, id.String())
		}
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &model)
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return model.toDomain(), nil
}

// GetByName retrieves a user by name.
func (r *userRepository) GetByName(ctx context.Context, name string) (*User, error) {
	var id uuid.UUID

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixUserByName + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %q", ErrUserNotFound, name)
		}
		if err != nil {
			return fmt.Errorf("failed to get user name index: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &id)
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}

	return r.GetByID(ctx, id)
}
