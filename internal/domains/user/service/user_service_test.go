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

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, filter *user.ListFilter) ([]user.User, int, error) {
	args := m.Called(ctx, filter)
	if u := args.Get(0); u != nil {
		return u.([]user.User), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// stubCache is an in-memory Cache for the token denylist.
type stubCache struct {
	keys map[string]bool
}

func newStubCache() *stubCache {
	return &stubCache{keys: map[string]bool{}}
}

func (s *stubCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s.keys[key] = true
	return nil
}

func (s *stubCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.keys, k)
	}
	return nil
}

func (s *stubCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (s *stubCache) Exists(ctx context.Context, key string) (bool, error) {
	return s.keys[key], nil
}

func (s *stubCache) Ping(ctx context.Context) error { return nil }

func testManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
}

func activeUser(email, password string) *user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &user.User{
		ID:           uuid.New(),
		Name:         "Ada Lovelace",
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleMember,
		IsActive:     true,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, testManager(), newStubCache())

	ctx := context.Background()
	newID := uuid.New()

	repo.On("EmailExists", ctx, "ada@example.com", uuid.Nil).Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(u *user.User) bool {
		hashed := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse")) == nil
		return u.Email == "ada@example.com" && u.Role == user.RoleMember && u.IsActive && hashed
	})).Return(newID, nil).Once()

	resp, err := svc.Register(ctx, &user.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, newID, resp.User.ID)
	assert.Equal(t, user.RoleMember, resp.User.Role)
	repo.AssertExpectations(t)
}

func TestUserService_Register_TakenEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, testManager(), newStubCache())

	ctx := context.Background()
	repo.On("EmailExists", ctx, "ada@example.com", uuid.Nil).Return(true, nil).Once()

	_, err := svc.Register(ctx, &user.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	repo := new(mockUserRepo)
	manager := testManager()
	svc := NewUserService(repo, manager, newStubCache())

	ctx := context.Background()
	u := activeUser("ada@example.com", "correct-horse")
	repo.On("FindByEmail", ctx, "ada@example.com").Return(u, nil).Once()

	resp, err := svc.Login(ctx, &user.LoginRequest{Email: "ada@example.com", Password: "correct-horse"})

	require.NoError(t, err)
	claims, err := manager.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, string(user.RoleMember), claims.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, testManager(), newStubCache())

	ctx := context.Background()
	repo.On("FindByEmail", ctx, "ada@example.com").
		Return(activeUser("ada@example.com", "correct-horse"), nil).Once()

	_, err := svc.Login(ctx, &user.LoginRequest{Email: "ada@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailMasked(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, testManager(), newStubCache())

	ctx := context.Background()
	repo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, user.ErrUserNotFound).Once()

	_, err := svc.Login(ctx, &user.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	// Unknown email and wrong password are indistinguishable.
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, testManager(), newStubCache())

	ctx := context.Background()
	u := activeUser("ada@example.com", "correct-horse")
	u.IsActive = false
	repo.On("FindByEmail", ctx, "ada@example.com").Return(u, nil).Once()

	_, err := svc.Login(ctx, &user.LoginRequest{Email: "ada@example.com", Password: "correct-horse"})

	assert.ErrorIs(t, err, user.ErrAccountInactive)
}

func TestUserService_Logout_DenylistsToken(t *testing.T) {
	repo := new(mockUserRepo)
	manager := testManager()
	store := newStubCache()
	svc := NewUserService(repo, manager, store)

	token, err := manager.GenerateAccessToken(uuid.NewString(), "ada@example.com", "member")
	require.NoError(t, err)
	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))

	assert.True(t, store.keys[jwt.DenylistKey(claims.ID)])
}

func TestUserService_Refresh_RotatesAndRevokesOldToken(t *testing.T) {
	repo := new(mockUserRepo)
	manager := testManager()
	store := newStubCache()
	svc := NewUserService(repo, manager, store)

	ctx := context.Background()
	u := activeUser("ada@example.com", "correct-horse")

	refresh, err := manager.GenerateRefreshToken(u.ID.String())
	require.NoError(t, err)

	repo.On("FindByID", ctx, u.ID).Return(u, nil).Once()

	resp, err := svc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, refresh, resp.RefreshToken)

	// The old refresh token cannot be replayed.
	repo.On("FindByID", ctx, u.ID).Return(u, nil).Maybe()
	_, err = svc.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestUserService_Refresh_AccessTokenRejected(t *testing.T) {
	repo := new(mockUserRepo)
	manager := testManager()
	svc := NewUserService(repo, manager, newStubCache())

	access, err := manager.GenerateAccessToken(uuid.NewString(), "ada@example.com", "member")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access)

	assert.ErrorIs(t, err, user.ErrInvalidToken)
}
