package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/abovebytes/coursehub/internal/domain/entity"
	repo "github.com/abovebytes/coursehub/internal/domain/repository"
	"github.com/abovebytes/coursehub/internal/events"
)

// EnrollmentService answers relationship queries joining users and
// courses. The read-side lookups degrade to an empty result when the
// referenced email or title does not resolve; only Enroll treats a
// dangling reference as an error.
type EnrollmentService struct {
	Enrollments repo.EnrollmentRepository
	Users       repo.UserRepository
	Courses     repo.CourseRepository
	Logger      *logrus.Logger
	Pub         EventPublisher
}

func NewEnrollmentService(e repo.EnrollmentRepository, u repo.UserRepository, c repo.CourseRepository, logger *logrus.Logger, pub EventPublisher) *EnrollmentService {
	return &EnrollmentService{Enrollments: e, Users: u, Courses: c, Logger: logger, Pub: pub}
}

func (s *EnrollmentService) List(ctx context.Context) ([]*entity.Enrollment, error) {
	return s.Enrollments.FindAll(ctx)
}

// ByStudent returns all enrollments referencing the user with the given
// email as student. An unknown email yields an empty set, not an error.
func (s *EnrollmentService) ByStudent(ctx context.Context, email string) ([]*entity.Enrollment, error) {
	student, err := s.Users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return []*entity.Enrollment{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Enrollments.FindByStudent(ctx, student.ID)
}

// ByTeacher is symmetric to ByStudent for the teacher reference.
func (s *EnrollmentService) ByTeacher(ctx context.Context, email string) ([]*entity.Enrollment, error) {
	teacher, err := s.Users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return []*entity.Enrollment{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Enrollments.FindByTeacher(ctx, teacher.ID)
}

// ByCourse resolves the course title case-insensitively and returns all
// enrollments referencing it. An unknown title yields an empty set.
func (s *EnrollmentService) ByCourse(ctx context.Context, title string) ([]*entity.Enrollment, error) {
	course, err := s.Courses.FindByName(ctx, title)
	if errors.Is(err, repo.ErrNotFound) {
		return []*entity.Enrollment{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Enrollments.FindByCourse(ctx, course.ID)
}

// Enroll links a student and a teacher to a course. All three
// references must resolve; a dangling one fails with a not-found error
// naming the reference.
func (s *EnrollmentService) Enroll(ctx context.Context, studentEmail, teacherEmail, courseTitle string) (*entity.Enrollment, error) {
	s.Logger.WithFields(logrus.Fields{"student": studentEmail, "teacher": teacherEmail, "course": courseTitle}).Info("enrollments_create called")

	student, err := s.Users.FindByEmail(ctx, studentEmail)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("student %s: %w", studentEmail, ErrUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	teacher, err := s.Users.FindByEmail(ctx, teacherEmail)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("teacher %s: %w", teacherEmail, ErrUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	course, err := s.Courses.FindByName(ctx, courseTitle)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("course '%s': %w", courseTitle, ErrCourseNotFound)
	}
	if err != nil {
		return nil, err
	}

	e := &entity.Enrollment{StudentID: student.ID, TeacherID: teacher.ID, CourseID: course.ID, Active: true}
	if err := s.Enrollments.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.Pub != nil {
		ev := events.New(events.TypeEnrolled, map[string]any{"id": e.ID, "student_id": student.ID, "teacher_id": teacher.ID, "course_id": course.ID})
		if perr := s.Pub.PublishJSON(ctx, ev); perr != nil {
			s.Logger.WithError(perr).WithField("event", events.TypeEnrolled).Warn("event publish failed")
		}
	}
	return e, nil
}
