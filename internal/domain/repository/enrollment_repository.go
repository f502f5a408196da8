package repository

import (
	"context"

	"github.com/abovebytes/coursehub/internal/domain/entity"
)

// EnrollmentRepository defines the interface for enrollment-related database operations.
type EnrollmentRepository interface {
	FindAll(ctx context.Context) ([]*entity.Enrollment, error)
	FindByStudent(ctx context.Context, studentID int64) ([]*entity.Enrollment, error)
	FindByTeacher(ctx context.Context, teacherID int64) ([]*entity.Enrollment, error)
	FindByCourse(ctx context.Context, courseID int64) ([]*entity.Enrollment, error)
	Create(ctx context.Context, e *entity.Enrollment) error
}
