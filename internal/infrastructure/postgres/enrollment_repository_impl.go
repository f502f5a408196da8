package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abovebytes/coursehub/internal/domain/entity"
	"github.com/abovebytes/coursehub/internal/domain/repository"
)

const enrollmentColumns = `id, student_id, teacher_id, course_id, enrolled_at, active`

type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

func collectEnrollments(rows pgx.Rows) ([]*entity.Enrollment, error) {
	defer rows.Close()
	out := make([]*entity.Enrollment, 0)
	for rows.Next() {
		e := &entity.Enrollment{}
		if err := rows.Scan(&e.ID, &e.StudentID, &e.TeacherID, &e.CourseID, &e.EnrolledAt, &e.Active); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EnrollmentRepository) FindAll(ctx context.Context) ([]*entity.Enrollment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+enrollmentColumns+` FROM enrollment ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectEnrollments(rows)
}

func (r *EnrollmentRepository) FindByStudent(ctx context.Context, studentID int64) ([]*entity.Enrollment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+enrollmentColumns+` FROM enrollment WHERE student_id = $1 ORDER BY id`, studentID)
	if err != nil {
		return nil, err
	}
	return collectEnrollments(rows)
}

func (r *EnrollmentRepository) FindByTeacher(ctx context.Context, teacherID int64) ([]*entity.Enrollment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+enrollmentColumns+` FROM enrollment WHERE teacher_id = $1 ORDER BY id`, teacherID)
	if err != nil {
		return nil, err
	}
	return collectEnrollments(rows)
}

func (r *EnrollmentRepository) FindByCourse(ctx context.Context, courseID int64) ([]*entity.Enrollment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+enrollmentColumns+` FROM enrollment WHERE course_id = $1 ORDER BY id`, courseID)
	if err != nil {
		return nil, err
	}
	return collectEnrollments(rows)
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *entity.Enrollment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO enrollment (student_id, teacher_id, course_id, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, enrolled_at
	`, e.StudentID, e.TeacherID, e.CourseID, e.Active)

	if err := row.Scan(&e.ID, &e.EnrolledAt); err != nil {
		return mapWriteError(err)
	}
	return nil
}

var _ repository.EnrollmentRepository = (*EnrollmentRepository)(nil)
