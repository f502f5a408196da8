package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abovebytes/coursehub/internal/domain/entity"
)

func TestDuplicateCourseErrorMessage(t *testing.T) {
	err := &DuplicateCourseError{ID: 7, Title: "Intro to Go", Provider: entity.ProviderUdemy, Level: entity.LevelBeginner}
	assert.Equal(t,
		"cannot add course: a course with title 'Intro to Go', provider 'UDEMY', and level 'BEGINNER' already exists (ID: 7)",
		err.Error())
}

func TestDuplicateUserErrorMessage(t *testing.T) {
	err := &DuplicateUserError{ID: 3, Email: "ada@example.com"}
	assert.Equal(t, "cannot create user: email 'ada@example.com' is already taken (ID: 3)", err.Error())
}
