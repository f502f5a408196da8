package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/abovebytes/coursehub/internal/domain/entity"
	"github.com/abovebytes/coursehub/internal/domain/repository"
	"github.com/abovebytes/coursehub/internal/events"
)

// In-memory repositories mirroring the Postgres behavior the services
// rely on: case-insensitive lookups and unique-constraint conflicts.

type fakeCourseRepo struct {
	mu      sync.Mutex
	seq     int64
	courses []*entity.Course
}

func newFakeCourseRepo() *fakeCourseRepo { return &fakeCourseRepo{} }

func (r *fakeCourseRepo) FindAll(ctx context.Context) ([]*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

func (r *fakeCourseRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.courses)), nil
}

func (r *fakeCourseRepo) FindByID(ctx context.Context, id int64) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCourseRepo) FindByName(ctx context.Context, name string) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCourseRepo) FindAllByName(ctx context.Context, name string) ([]*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Course, 0)
	for _, c := range r.courses {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) FindFirstByDescriptionContains(ctx context.Context, text string) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if strings.Contains(strings.ToLower(c.Description), strings.ToLower(text)) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCourseRepo) FindByNameProviderLevel(ctx context.Context, name string, provider entity.Provider, level entity.Level) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c := r.findTriple(name, provider, level); c != nil {
		cp := *c
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCourseRepo) findTriple(name string, provider entity.Provider, level entity.Level) *entity.Course {
	for _, c := range r.courses {
		if strings.EqualFold(c.Name, name) && c.Provider == provider && c.Level == level {
			return c
		}
	}
	return nil
}

func (r *fakeCourseRepo) Create(ctx context.Context, c *entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// unique index on (lower(name), provider, level)
	if r.findTriple(c.Name, c.Provider, c.Level) != nil {
		return repository.ErrConflict
	}
	r.seq++
	c.ID = r.seq
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.courses = append(r.courses, &cp)
	return nil
}

func (r *fakeCourseRepo) Update(ctx context.Context, c *entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dup := r.findTriple(c.Name, c.Provider, c.Level); dup != nil && dup.ID != c.ID {
		return repository.ErrConflict
	}
	for i, cur := range r.courses {
		if cur.ID == c.ID {
			c.UpdatedAt = time.Now()
			cp := *c
			r.courses[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeCourseRepo) DeleteAll(ctx context.Context, courses []*entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	drop := make(map[int64]bool, len(courses))
	for _, c := range courses {
		drop[c.ID] = true
	}
	kept := r.courses[:0]
	for _, c := range r.courses {
		if !drop[c.ID] {
			kept = append(kept, c)
		}
	}
	r.courses = kept
	return nil
}

var _ repository.CourseRepository = (*fakeCourseRepo)(nil)

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users []*entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{} }

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) CountActive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Active {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// unique index on lower(email)
	for _, cur := range r.users {
		if strings.EqualFold(cur.Email, u.Email) {
			return repository.ErrConflict
		}
	}
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.users {
		if cur.ID == u.ID {
			u.UpdatedAt = time.Now()
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeEnrollmentRepo struct {
	mu          sync.Mutex
	seq         int64
	enrollments []*entity.Enrollment
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo { return &fakeEnrollmentRepo{} }

func (r *fakeEnrollmentRepo) FindAll(ctx context.Context) ([]*entity.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Enrollment, len(r.enrollments))
	copy(out, r.enrollments)
	return out, nil
}

func (r *fakeEnrollmentRepo) filter(match func(*entity.Enrollment) bool) []*entity.Enrollment {
	out := make([]*entity.Enrollment, 0)
	for _, e := range r.enrollments {
		if match(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out
}

func (r *fakeEnrollmentRepo) FindByStudent(ctx context.Context, studentID int64) ([]*entity.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(e *entity.Enrollment) bool { return e.StudentID == studentID }), nil
}

func (r *fakeEnrollmentRepo) FindByTeacher(ctx context.Context, teacherID int64) ([]*entity.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(e *entity.Enrollment) bool { return e.TeacherID == teacherID }), nil
}

func (r *fakeEnrollmentRepo) FindByCourse(ctx context.Context, courseID int64) ([]*entity.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(e *entity.Enrollment) bool { return e.CourseID == courseID }), nil
}

func (r *fakeEnrollmentRepo) Create(ctx context.Context, e *entity.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	e.ID = r.seq
	e.EnrolledAt = time.Now()
	cp := *e
	r.enrollments = append(r.enrollments, &cp)
	return nil
}

var _ repository.EnrollmentRepository = (*fakeEnrollmentRepo)(nil)

// recordingPublisher captures events instead of talking to a broker.
type recordingPublisher struct {
	mu        sync.Mutex
	published []events.Event
}

func (p *recordingPublisher) PublishJSON(ctx context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ev, ok := body.(events.Event); ok {
		p.published = append(p.published, ev)
	}
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.published))
	for _, ev := range p.published {
		out = append(out, ev.Type)
	}
	return out
}
