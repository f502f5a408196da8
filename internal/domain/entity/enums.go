package entity

import "strings"

// Provider identifies the platform a course originates from.
type Provider string

const (
	ProviderUdemy       Provider = "UDEMY"
	ProviderCoursera    Provider = "COURSERA"
	ProviderPluralsight Provider = "PLURALSIGHT"
	ProviderEdx         Provider = "EDX"
	ProviderYoutube     Provider = "YOUTUBE"
	ProviderSelfHosted  Provider = "SELF_HOSTED"
)

func (p Provider) Valid() bool {
	switch p {
	case ProviderUdemy, ProviderCoursera, ProviderPluralsight, ProviderEdx, ProviderYoutube, ProviderSelfHosted:
		return true
	}
	return false
}

func (p Provider) String() string { return string(p) }

// ParseProvider accepts a provider name in any casing.
func ParseProvider(s string) (Provider, bool) {
	p := Provider(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Valid()
}

// Level identifies the difficulty tier of a course.
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func (l Level) String() string { return string(l) }

func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	return l, l.Valid()
}

// Role identifies what an account is allowed to do.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
	RoleAdmin      Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}
