package auth

import (
	"context"
	"testing"

	"crm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, username, role string) (string, error) {
	return "stub-token", nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubJWT{})

	user := &domain.User{
		ID:           1,
		Username:     "bob",
		Name:         "Bob Carter",
		Role:         domain.RoleEmployee,
		PasswordHash: hashOf(t, "Secret123!"),
	}
	repo.On("GetByUsername", mock.Anything, "bob").Return(user, nil)

	result, err := svc.Login(context.Background(), LoginRequest{Username: "bob", Password: "Secret123!"})
	require.NoError(t, err)
	assert.Equal(t, "stub-token", result.AccessToken)
	assert.Equal(t, int64(1), result.User.ID)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubJWT{})

	user := &domain.User{ID: 1, Username: "bob", PasswordHash: hashOf(t, "Secret123!")}
	repo.On("GetByUsername", mock.Anything, "bob").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "bob", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubJWT{})

	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword_IncorrectOldPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubJWT{})

	user := &domain.User{ID: 1, PasswordHash: hashOf(t, "OldPass1!")}

	err := svc.ChangePassword(context.Background(), user, "not-the-old-one", "NewPass1!")
	assert.ErrorIs(t, err, ErrIncorrectOldPassword)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// Reusing the current password is rejected before the strength policy runs,
// so even a fully compliant password comes back as SAME_PASSWORD.
func TestChangePassword_SamePasswordBeforeStrength(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubJWT{})

	user := &domain.User{ID: 1, PasswordHash: hashOf(t, "OldPass1!")}

	err := svc.ChangePassword(context.Background(), user, "OldPass1!", "OldPass1!")
	assert.ErrorIs(t, err, ErrSamePassword)
}

func TestChangePassword_StrengthPolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1!"},
		{"no uppercase", "lowercase1!"},
		{"no lowercase", "UPPERCASE1!"},
		{"no digit", "NoDigits!!"},
		{"no special char", "NoSpecial1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockUserRepo)
			svc := NewService(repo, stubJWT{})

			user := &domain.User{ID: 1, PasswordHash: hashOf(t, "OldPass1!")}

			err := svc.ChangePassword(context.Background(), user, "OldPass1!", tc.password)
			assert.ErrorIs(t, err, ErrWeakPassword)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestChangePassword_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubJWT{})

	user := &domain.User{ID: 1, PasswordHash: hashOf(t, "OldPass1!")}
	repo.On("Update", mock.Anything, user).Return(nil)

	err := svc.ChangePassword(context.Background(), user, "OldPass1!", "BrandNew2#")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("BrandNew2#")))
	repo.AssertExpectations(t)
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubJWT{})

	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetCurrentUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
