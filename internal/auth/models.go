package auth

import (
	"time"

	"github.com/gitscope/gitscope/internal/storage"
	"github.com/google/uuid"
)

// userModel represents a user in the system.
type userModel struct {
	storage.BaseEntity

	Name         string   `json:"name"`
	PasswordHash string   `json:"password_hash"`
	Role         UserRole `json:"role"`
}

func newUserModel(user UserDraft, passwordHash string) *userModel {
	return &userModel{
		BaseEntity: storage.BaseEntity{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         user.Name,
		PasswordHash: passwordHash,
		Role:         user.Role,
	}
}

func (u *userModel) toDomain() *User {
	if u == nil {
		return nil
	}

	return &User{
		UserBase: UserBase{
			Name:         u.Name,
			Role:         u.Role,
			PasswordHash: u.PasswordHash,
		},
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
