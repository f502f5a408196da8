package repository

import (
	"context"

	"github.com/abovebytes/coursehub/internal/domain/entity"
)

// CourseRepository defines the interface for course-related database operations.
// Lookups by name are case-insensitive. Single-row lookups return
// ErrNotFound when nothing matches.
type CourseRepository interface {
	FindAll(ctx context.Context) ([]*entity.Course, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Course, error)
	FindByName(ctx context.Context, name string) (*entity.Course, error)
	FindAllByName(ctx context.Context, name string) ([]*entity.Course, error)
	FindFirstByDescriptionContains(ctx context.Context, text string) (*entity.Course, error)
	FindByNameProviderLevel(ctx context.Context, name string, provider entity.Provider, level entity.Level) (*entity.Course, error)
	Create(ctx context.Context, c *entity.Course) error
	Update(ctx context.Context, c *entity.Course) error
	DeleteAll(ctx context.Context, courses []*entity.Course) error
}
