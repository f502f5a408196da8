package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abovebytes/coursehub/internal/domain/entity"
	"github.com/abovebytes/coursehub/internal/domain/repository"
)

const courseColumns = `id, course_name, course_url, description, provider, language, level, duration_minutes, rating, active, created_at, updated_at`

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func scanCourse(row pgx.Row) (*entity.Course, error) {
	c := &entity.Course{}
	if err := row.Scan(&c.ID, &c.Name, &c.URL, &c.Description, &c.Provider, &c.Language, &c.Level,
		&c.DurationMinutes, &c.Rating, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapReadError(err)
	}
	return c, nil
}

func collectCourses(rows pgx.Rows) ([]*entity.Course, error) {
	defer rows.Close()
	out := make([]*entity.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+courseColumns+` FROM course ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM course`).Scan(&n)
	return n, err
}

func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*entity.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx, `SELECT `+courseColumns+` FROM course WHERE id = $1`, id))
}

func (r *CourseRepository) FindByName(ctx context.Context, name string) (*entity.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx, `
		SELECT `+courseColumns+` FROM course
		WHERE lower(course_name) = lower($1)
		ORDER BY id
		LIMIT 1
	`, name))
}

func (r *CourseRepository) FindAllByName(ctx context.Context, name string) ([]*entity.Course, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+courseColumns+` FROM course
		WHERE lower(course_name) = lower($1)
		ORDER BY id
	`, name)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

func (r *CourseRepository) FindFirstByDescriptionContains(ctx context.Context, text string) (*entity.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx, `
		SELECT `+courseColumns+` FROM course
		WHERE position(lower($1) in lower(description)) > 0
		ORDER BY id
		LIMIT 1
	`, text))
}

func (r *CourseRepository) FindByNameProviderLevel(ctx context.Context, name string, provider entity.Provider, level entity.Level) (*entity.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx, `
		SELECT `+courseColumns+` FROM course
		WHERE lower(course_name) = lower($1) AND provider = $2 AND level = $3
	`, name, provider, level))
}

func (r *CourseRepository) Create(ctx context.Context, c *entity.Course) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO course (course_name, course_url, description, provider, language, level, duration_minutes, rating, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, c.Name, c.URL, c.Description, c.Provider, c.Language, c.Level, c.DurationMinutes, c.Rating, c.Active)

	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, c *entity.Course) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE course
		SET course_name = $1, course_url = $2, description = $3, provider = $4, language = $5,
		    level = $6, duration_minutes = $7, rating = $8, active = $9, updated_at = now()
		WHERE id = $10
		RETURNING updated_at
	`, c.Name, c.URL, c.Description, c.Provider, c.Language, c.Level, c.DurationMinutes, c.Rating, c.Active, c.ID)

	if err := row.Scan(&c.UpdatedAt); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *CourseRepository) DeleteAll(ctx context.Context, courses []*entity.Course) error {
	if len(courses) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM course WHERE id = ANY($1)`, ids)
	return err
}

var _ repository.CourseRepository = (*CourseRepository)(nil)
