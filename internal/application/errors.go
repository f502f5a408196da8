package application

import (
	"errors"
	"fmt"

	"github.com/abovebytes/coursehub/internal/domain/entity"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrUserNotFound   = errors.New("user not found")

	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidProvider  = errors.New("invalid provider")
	ErrInvalidLevel     = errors.New("invalid level")
	ErrFullNameRequired = errors.New("full name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidRole      = errors.New("invalid role")
)

// DuplicateCourseError reports a (title, provider, level) collision and
// identifies the record already holding the triple. ID is zero when the
// conflict surfaced from the storage constraint and the winner could
// not be re-read.
type DuplicateCourseError struct {
	ID       int64
	Title    string
	Provider entity.Provider
	Level    entity.Level
}

func (e *DuplicateCourseError) Error() string {
	return fmt.Sprintf("cannot add course: a course with title '%s', provider '%s', and level '%s' already exists (ID: %d)",
		e.Title, e.Provider, e.Level, e.ID)
}

// DuplicateUserError reports an email collision.
type DuplicateUserError struct {
	ID    int64
	Email string
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("cannot create user: email '%s' is already taken (ID: %d)", e.Email, e.ID)
}
