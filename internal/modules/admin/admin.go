package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equiprent/internal/domain"
)

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrSelfDemotion = errors.New("cannot demote yourself")
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error)
}

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ChangeRole assigns a role from the closed set. An admin stripping their
// own admin tier is rejected to avoid locking everyone out.
func (s *Service) ChangeRole(ctx context.Context, actorID, userID int64, role string) (*domain.User, error) {
	target := domain.Role(role)
	if !target.Valid() {
		return nil, ErrInvalidRole
	}
	if actorID == userID && target != domain.RoleAdmin {
		return nil, ErrSelfDemotion
	}

	user, err := s.users.UpdateRole(ctx, userID, target)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
