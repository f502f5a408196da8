package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abovebytes/coursehub/internal/domain/entity"
	"github.com/abovebytes/coursehub/internal/events"
	"github.com/abovebytes/coursehub/internal/generator"
)

type enrollmentFixture struct {
	enrollments *EnrollmentService
	courses     *CourseService
	users       *UserService
	pub         *recordingPublisher
}

func newEnrollmentFixture() *enrollmentFixture {
	courseRepo := newFakeCourseRepo()
	userRepo := newFakeUserRepo()
	enrollRepo := newFakeEnrollmentRepo()
	pub := &recordingPublisher{}
	logger := testLogger()
	gen := generator.NewWithSeed("courses.abovebytes.com", 7)

	return &enrollmentFixture{
		enrollments: NewEnrollmentService(enrollRepo, userRepo, courseRepo, logger, pub),
		courses:     NewCourseService(courseRepo, gen, logger, pub, nil, ""),
		users:       NewUserService(userRepo, logger, pub),
		pub:         pub,
	}
}

func (f *enrollmentFixture) seed(t *testing.T) (student, teacher *entity.User, course *entity.Course) {
	t.Helper()
	student = createUser(t, f.users, "Ada Lovelace", "ada@example.com", entity.RoleStudent)
	teacher = createUser(t, f.users, "Grace Hopper", "grace@example.com", entity.RoleInstructor)
	course = addCourse(t, f.courses, "Intro to Go", entity.ProviderSelfHosted, entity.LevelBeginner)
	return student, teacher, course
}

func TestEnrollmentServiceEnroll(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	student, teacher, course := f.seed(t)

	e, err := f.enrollments.Enroll(ctx, "ada@example.com", "grace@example.com", "intro TO go")
	require.NoError(t, err)
	assert.NotZero(t, e.ID)
	assert.Equal(t, student.ID, e.StudentID)
	assert.Equal(t, teacher.ID, e.TeacherID)
	assert.Equal(t, course.ID, e.CourseID)
	assert.True(t, e.Active)

	assert.Contains(t, f.pub.types(), events.TypeEnrolled)
}

func TestEnrollmentServiceEnrollDanglingReferences(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	f.seed(t)

	_, err := f.enrollments.Enroll(ctx, "nobody@example.com", "grace@example.com", "Intro to Go")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Contains(t, err.Error(), "student nobody@example.com")

	_, err = f.enrollments.Enroll(ctx, "ada@example.com", "nobody@example.com", "Intro to Go")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Contains(t, err.Error(), "teacher nobody@example.com")

	_, err = f.enrollments.Enroll(ctx, "ada@example.com", "grace@example.com", "No Such Course")
	require.ErrorIs(t, err, ErrCourseNotFound)
	assert.Contains(t, err.Error(), "course 'No Such Course'")

	list, lerr := f.enrollments.List(ctx)
	require.NoError(t, lerr)
	assert.Empty(t, list, "failed enrollments must not persist")
}

func TestEnrollmentServiceLookups(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	student, teacher, course := f.seed(t)
	other := createUser(t, f.users, "Alan Turing", "alan@example.com", entity.RoleStudent)

	_, err := f.enrollments.Enroll(ctx, student.Email, teacher.Email, course.Name)
	require.NoError(t, err)
	_, err = f.enrollments.Enroll(ctx, other.Email, teacher.Email, course.Name)
	require.NoError(t, err)

	byStudent, err := f.enrollments.ByStudent(ctx, "ADA@example.com")
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	assert.Equal(t, student.ID, byStudent[0].StudentID)

	byTeacher, err := f.enrollments.ByTeacher(ctx, teacher.Email)
	require.NoError(t, err)
	assert.Len(t, byTeacher, 2)

	byCourse, err := f.enrollments.ByCourse(ctx, "INTRO TO GO")
	require.NoError(t, err)
	assert.Len(t, byCourse, 2)

	all, err := f.enrollments.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEnrollmentServiceLookupsUnknownReference(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	// unknown email or title degrades to an empty set, not an error
	byStudent, err := f.enrollments.ByStudent(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, byStudent)
	assert.Empty(t, byStudent)

	byTeacher, err := f.enrollments.ByTeacher(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, byTeacher)

	byCourse, err := f.enrollments.ByCourse(ctx, "No Such Course")
	require.NoError(t, err)
	assert.Empty(t, byCourse)
}
