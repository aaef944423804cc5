package repository

import (
	"context"

	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
)

// UserRepository persists staff accounts.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
