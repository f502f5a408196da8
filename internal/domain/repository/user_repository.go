package repository

import (
	"context"

	"github.com/abovebytes/coursehub/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Create returns ErrConflict when the email is already taken.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	CountActive(ctx context.Context) (int64, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
}
