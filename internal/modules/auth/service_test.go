package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"equiprent/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestRegister(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockJWT.On("GenerateToken", int64(999), "user").Return("signed-token", nil)

	service := NewService(mockUsers, mockJWT)

	resp, err := service.Register(context.Background(), RegisterRequest{
		Name:     "New User",
		Email:    "  NEW@Example.com ",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "new@example.com", resp.User.Email, "email is normalized before storage")
	assert.Equal(t, domain.RoleUser, resp.User.Role)

	created := mockUsers.Calls[1].Arguments.Get(1).(*domain.User)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	service := NewService(mockUsers, new(MockTokenIssuer))

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &domain.User{
		ID:           42,
		Name:         "Existing",
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleEquipmentManager,
	}

	t.Run("valid credentials", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockJWT := new(MockTokenIssuer)
		mockUsers.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil)
		mockJWT.On("GenerateToken", int64(42), "equipment_manager").Return("signed-token", nil)

		service := NewService(mockUsers, mockJWT)

		resp, err := service.Login(context.Background(), LoginRequest{
			Email:    "user@example.com",
			Password: "secret123",
		})
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, int64(42), resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil)

		service := NewService(mockUsers, new(MockTokenIssuer))

		_, err := service.Login(context.Background(), LoginRequest{
			Email:    "user@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		service := NewService(mockUsers, new(MockTokenIssuer))

		_, err := service.Login(context.Background(), LoginRequest{
			Email:    "ghost@example.com",
			Password: "secret123",
		})
		// Same error as a wrong password, no account enumeration.
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestMe(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{
		ID:    42,
		Name:  "Existing",
		Email: "user@example.com",
		Role:  domain.RoleUser,
	}, nil)
	mockUsers.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, new(MockTokenIssuer))

	me, err := service.Me(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", me.Email)

	_, err = service.Me(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
