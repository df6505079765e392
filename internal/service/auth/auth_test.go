package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rainerio-service/internal/domain/seller"
	xerrors "rainerio-service/internal/pkg/errors"
	"rainerio-service/internal/pkg/session"
	"rainerio-service/internal/pkg/token"
	"rainerio-service/internal/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockSellerRepo struct {
	mock.Mock
}

func (m *mockSellerRepo) Load(ctx context.Context) ([]seller.Seller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]seller.Seller), args.Error(1)
}

func (m *mockSellerRepo) Upsert(ctx context.Context, s seller.Seller, keepPassword bool) error {
	args := m.Called(ctx, s, keepPassword)
	return args.Error(0)
}

func (m *mockSellerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSellerRepo) FindByCredentials(ctx context.Context, identifier, password string) (*seller.Seller, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Create(ctx context.Context, data *session.Data) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *mockSessions) Get(ctx context.Context, sellerID string) (*session.Data, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Data), args.Error(1)
}

func (m *mockSessions) Destroy(ctx context.Context, sellerID string) error {
	args := m.Called(ctx, sellerID)
	return args.Error(0)
}

func newAuthService(repo seller.Repository, sessions auth.SessionStore) *auth.AuthService {
	tokens := token.NewService("test-secret", time.Hour)
	return auth.NewAuthService(repo, tokens, sessions, 12*time.Hour, zap.NewNop())
}

func TestLoginSuccess(t *testing.T) {
	repo := new(mockSellerRepo)
	sessions := new(mockSessions)
	svc := newAuthService(repo, sessions)

	matched := &seller.Seller{ID: "s1", Name: "JOÃO", Username: "joao", Active: true}
	repo.On("FindByCredentials", mock.Anything, "joao", "x123").Return(matched, nil)
	sessions.On("Create", mock.Anything, mock.MatchedBy(func(d *session.Data) bool {
		return d.SellerID == "s1" && d.Name == "JOÃO" && d.ExpiresAt.After(d.LoginAt)
	})).Return(nil)

	result, err := svc.Login(context.Background(), "joao", "x123")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "s1", result.Seller.ID)
	assert.Equal(t, seller.DefaultImageURL, result.Seller.ImageURL, "blank photo gets the default")
	sessions.AssertExpectations(t)
}

func TestLoginWrongCredentials(t *testing.T) {
	repo := new(mockSellerRepo)
	sessions := new(mockSessions)
	svc := newAuthService(repo, sessions)

	repo.On("FindByCredentials", mock.Anything, "joao", "wrong").Return(nil, xerrors.ErrNotFound)

	_, err := svc.Login(context.Background(), "joao", "wrong")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// An inactive seller with matching credentials must look exactly like a
// wrong password from the caller's side.
func TestLoginInactiveSellerLooksLikeWrongCredentials(t *testing.T) {
	repo := new(mockSellerRepo)
	svc := newAuthService(repo, new(mockSessions))

	repo.On("FindByCredentials", mock.Anything, "joao", "x123").Return(nil, xerrors.ErrSellerInactive)

	_, err := svc.Login(context.Background(), "joao", "x123")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginTransportErrorPropagates(t *testing.T) {
	repo := new(mockSellerRepo)
	svc := newAuthService(repo, new(mockSessions))

	cause := errors.New("connection refused")
	repo.On("FindByCredentials", mock.Anything, "joao", "x123").Return(nil, cause)

	_, err := svc.Login(context.Background(), "joao", "x123")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginSessionFailureFailsLogin(t *testing.T) {
	repo := new(mockSellerRepo)
	sessions := new(mockSessions)
	svc := newAuthService(repo, sessions)

	repo.On("FindByCredentials", mock.Anything, "joao", "x123").
		Return(&seller.Seller{ID: "s1", Name: "JOÃO", Active: true}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	_, err := svc.Login(context.Background(), "joao", "x123")
	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	sessions := new(mockSessions)
	svc := newAuthService(new(mockSellerRepo), sessions)

	sessions.On("Destroy", mock.Anything, "s1").Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), "s1"))
	sessions.AssertExpectations(t)
}

func TestValidate(t *testing.T) {
	repo := new(mockSellerRepo)
	sessions := new(mockSessions)
	svc := newAuthService(repo, sessions)

	matched := &seller.Seller{ID: "s1", Name: "JOÃO", Active: true, IsAdmin: true}
	repo.On("FindByCredentials", mock.Anything, "joao", "x123").Return(matched, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Login(context.Background(), "joao", "x123")
	assert.NoError(t, err)

	sessions.On("Get", mock.Anything, "s1").Return(&session.Data{SellerID: "s1", Name: "JOÃO", IsAdmin: true}, nil)

	claims, data, err := svc.Validate(context.Background(), result.Token)
	assert.NoError(t, err)
	assert.Equal(t, "s1", claims.SellerID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "JOÃO", data.Name)
}

func TestValidateRejectsGarbageToken(t *testing.T) {
	svc := newAuthService(new(mockSellerRepo), new(mockSessions))

	_, _, err := svc.Validate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

// A valid token with no live session behind it is useless: logout kills
// access even before the token expires.
func TestValidateRequiresLiveSession(t *testing.T) {
	repo := new(mockSellerRepo)
	sessions := new(mockSessions)
	svc := newAuthService(repo, sessions)

	repo.On("FindByCredentials", mock.Anything, "joao", "x123").
		Return(&seller.Seller{ID: "s1", Name: "JOÃO", Active: true}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Login(context.Background(), "joao", "x123")
	assert.NoError(t, err)

	sessions.On("Get", mock.Anything, "s1").Return(nil, xerrors.ErrSessionExpired)

	_, _, err = svc.Validate(context.Background(), result.Token)
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)
}
