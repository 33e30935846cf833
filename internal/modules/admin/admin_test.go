package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"equiprent/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestChangeRole(t *testing.T) {
	t.Run("promote", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("UpdateRole", mock.Anything, int64(7), domain.RoleEquipmentManager).
			Return(&domain.User{ID: 7, Role: domain.RoleEquipmentManager}, nil)

		service := NewService(mockUsers)

		user, err := service.ChangeRole(context.Background(), 1, 7, "equipment_manager")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleEquipmentManager, user.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		service := NewService(new(MockUserRepository))

		_, err := service.ChangeRole(context.Background(), 1, 7, "superuser")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("admin cannot demote themselves", func(t *testing.T) {
		service := NewService(new(MockUserRepository))

		_, err := service.ChangeRole(context.Background(), 1, 1, "user")
		assert.ErrorIs(t, err, ErrSelfDemotion)
	})

	t.Run("reassigning own admin role is a no-op allowed", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("UpdateRole", mock.Anything, int64(1), domain.RoleAdmin).
			Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)

		service := NewService(mockUsers)

		_, err := service.ChangeRole(context.Background(), 1, 1, "admin")
		assert.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("UpdateRole", mock.Anything, int64(404), domain.RoleUser).
			Return(nil, gorm.ErrRecordNotFound)

		service := NewService(mockUsers)

		_, err := service.ChangeRole(context.Background(), 1, 404, "user")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestListUsers(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("List", mock.Anything).Return([]domain.User{
		{ID: 1, Role: domain.RoleAdmin},
		{ID: 2, Role: domain.RoleUser},
	}, nil)

	service := NewService(mockUsers)

	users, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
