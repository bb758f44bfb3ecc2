package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type mockAuthRepo struct {
	mock.Mock
}

func (m *mockAuthRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockAuthRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func newTestAuth(repo AuthRepository) (*AuthService, *TokenManager) {
	tokens := NewTokenManager("test-secret-0123456789abcdef0123456789", time.Hour)
	return NewAuthService(repo, tokens), tokens
}

func TestAuthService_Register(t *testing.T) {
	repo := new(mockAuthRepo)
	svc, tokens := newTestAuth(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ann@example.com" && u.Name == "Ann"
	})).Return(nil).Once()

	res, err := svc.Register(ctx, RegisterInput{Email: " Ann@Example.com ", Name: "Ann", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", res.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("secret123")))

	actor, err := tokens.ParseAccess(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, actor.ID)
	assert.Equal(t, "ann@example.com", actor.Email)
	repo.AssertExpectations(t)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	repo := new(mockAuthRepo)
	svc, _ := newTestAuth(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "not-an-email", Name: "Ann", Password: "secret123"})
	require.True(t, apperror.IsValidation(err))

	_, err = svc.Register(context.Background(), RegisterInput{Email: "ann@example.com", Name: "Ann", Password: "short1"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "password")

	_, err = svc.Register(context.Background(), RegisterInput{Email: "ann@example.com", Name: "Ann", Password: "onlyletters"})
	assert.True(t, apperror.IsValidation(err))

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := new(mockAuthRepo)
	svc, _ := newTestAuth(repo)
	repo.On("Create", mock.Anything, mock.Anything).Return(apperror.ErrEmailTaken)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "ann@example.com", Name: "Ann", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	repo := new(mockAuthRepo)
	svc, tokens := newTestAuth(repo)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := entity.NewUser("ann@example.com", "Ann", string(hash))
	require.NoError(t, err)

	repo.On("FindByEmail", ctx, "ann@example.com").Return(user, nil)
	repo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, apperror.ErrUserNotFound)

	res, err := svc.Login(ctx, LoginInput{Email: "ANN@example.com", Password: "secret123"})
	require.NoError(t, err)
	actor, err := tokens.ParseAccess(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, actor.ID)

	_, err = svc.Login(ctx, LoginInput{Email: "ann@example.com", Password: "wrong-pass1"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestTokenManager_RejectsForeignAndExpiredTokens(t *testing.T) {
	user, err := entity.NewUser("ann@example.com", "Ann", "hash")
	require.NoError(t, err)

	other := NewTokenManager("another-secret-0123456789abcdef0123", time.Hour)
	foreign, _, err := other.Generate(user)
	require.NoError(t, err)

	tokens := NewTokenManager("test-secret-0123456789abcdef0123456789", time.Hour)
	_, err = tokens.ParseAccess(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenManager("test-secret-0123456789abcdef0123456789", -time.Minute)
	stale, _, err := expired.Generate(user)
	require.NoError(t, err)
	_, err = tokens.ParseAccess(stale)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.ParseAccess("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_CarriesPicture(t *testing.T) {
	user, err := entity.NewUser("ann@example.com", "Ann", "hash")
	require.NoError(t, err)
	img := "https://img.example.com/a.png"
	user.Image = &img

	tokens := NewTokenManager("test-secret-0123456789abcdef0123456789", time.Hour)
	raw, exp, err := tokens.Generate(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	actor, err := tokens.ParseAccess(raw)
	require.NoError(t, err)
	require.NotNil(t, actor.Image)
	assert.Equal(t, img, *actor.Image)
	assert.NotEqual(t, uuid.Nil, actor.ID)
}
