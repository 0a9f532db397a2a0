package auth

import (
	"context"
	"testing"
	"time"

	"officespace/internal/domain"
	jwtsvc "officespace/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

/* ==================== MOCKS ==================== */

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func testJWT() *jwtsvc.Service {
	return jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
}

/* ==================== TESTS ==================== */

func TestRegister_Visitor(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, testJWT())

	users.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Ana@Example.com",
		Password: "secret-password",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVisitor, result.User.Role)
	assert.Equal(t, "ana@example.com", result.User.Email)
	assert.Empty(t, result.User.PasswordHash)
	assert.NotEmpty(t, result.Token)

	claims, err := testJWT().ValidateToken(result.Token)
	require.NoError(t, err)
	assert.True(t, claims.Can("reservations.show"))
	assert.False(t, claims.Can("office.create"))
}

func TestRegister_Host(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, testJWT())

	users.On("ExistsByEmail", mock.Anything, "joao@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "joao@example.com",
		Password: "secret-password",
		Name:     "Joao",
		Role:     "host",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHost, result.User.Role)

	claims, err := testJWT().ValidateToken(result.Token)
	require.NoError(t, err)
	assert.True(t, claims.Can("office.create"))
	assert.True(t, claims.Can("office.update"))
	assert.True(t, claims.Can("office.delete"))
	assert.True(t, claims.Can("reservations.show"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, testJWT())

	users.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ana@example.com",
		Password: "secret-password",
		Name:     "Ana",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create")
}

func TestLogin(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, testJWT())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID:           7,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleVisitor,
	}, nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.User.ID)
	assert.Empty(t, result.User.PasswordHash)

	claims, err := testJWT().ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "visitor", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, testJWT())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID:           7,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleVisitor,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, testJWT())

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestScopesForRole_Moderator(t *testing.T) {
	scopes := ScopesForRole(domain.RoleModerator)
	assert.Contains(t, scopes, "office.approve")
	assert.Contains(t, scopes, "reservations.show")
}

func TestGetCurrentUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, testJWT())

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, PasswordHash: "x"}, nil)

	user, err := svc.GetCurrentUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	users.On("GetByID", mock.Anything, int64(8)).Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.GetCurrentUser(context.Background(), 8)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
