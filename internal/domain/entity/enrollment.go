package entity

import (
	"time"
)

// Enrollment links one student and one teacher to a course.
// Foreign keys are enforced in Postgres; the service re-resolves all
// three references before creating one.
type Enrollment struct {
	ID         int64     `json:"id"`
	StudentID  int64     `json:"student_id"`
	TeacherID  int64     `json:"teacher_id"`
	CourseID   int64     `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Active     bool      `json:"active"`
}
