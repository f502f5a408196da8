package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/abovebytes/coursehub/internal/domain/entity"
	repo "github.com/abovebytes/coursehub/internal/domain/repository"
	"github.com/abovebytes/coursehub/internal/events"
)

// UserService manages accounts. Email uniqueness has no service-level
// pre-check; the unique index on lower(email) is the only guarantee and
// a conflict from the repository is translated into DuplicateUserError.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
	Pub    EventPublisher
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger, pub EventPublisher) *UserService {
	return &UserService{Repo: r, Logger: logger, Pub: pub}
}

func (s *UserService) Create(ctx context.Context, fullName, email string, role entity.Role) (*entity.User, error) {
	s.Logger.WithField("email", email).Info("users_create called")

	if strings.TrimSpace(fullName) == "" {
		return nil, ErrFullNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	u := &entity.User{FullName: fullName, Email: email, Role: role, Active: true}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			dup := &DuplicateUserError{Email: email}
			if existing, ferr := s.Repo.FindByEmail(ctx, email); ferr == nil {
				dup.ID = existing.ID
				dup.Email = existing.Email
			}
			return nil, dup
		}
		return nil, err
	}

	s.publish(ctx, events.TypeUserCreated, map[string]any{"id": u.ID, "email": u.Email, "role": u.Role})
	return u, nil
}

// Deactivate flips the active flag off. Absence is reported with a
// message, not an error, and the operation is idempotent.
func (s *UserService) Deactivate(ctx context.Context, email string) (string, error) {
	s.Logger.WithField("email", email).Info("users_deactivate called")

	u, err := s.Repo.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return "User not found with email " + email, nil
	}
	if err != nil {
		return "", err
	}
	u.Active = false
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	s.publish(ctx, events.TypeUserDeactivated, map[string]any{"id": u.ID, "email": u.Email})
	return "User " + email + " deactivated", nil
}

// GetByEmail does a case-insensitive lookup.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.FindAll(ctx)
}

func (s *UserService) CountActive(ctx context.Context) (int64, error) {
	return s.Repo.CountActive(ctx)
}

func (s *UserService) publish(ctx context.Context, typ string, data map[string]any) {
	if s.Pub == nil {
		return
	}
	if err := s.Pub.PublishJSON(ctx, events.New(typ, data)); err != nil {
		s.Logger.WithError(err).WithField("event", typ).Warn("event publish failed")
	}
}
