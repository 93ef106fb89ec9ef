package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/service/mocks"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func newSvc(repo *mocks.MockAdminRepository, ttl time.Duration) *service {
	return NewAuthService(repo, secret, ttl, time.Second, time.Second)
}

func storedAdmin(t *testing.T, username, password string) *model.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &model.Admin{ID: gofakeit.UUID(), Username: username, PasswordHash: hash}
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	username := gofakeit.Username()
	password := gofakeit.Password(true, true, true, false, false, 14)

	t.Run("issues a token that parses back", func(t *testing.T) {
		t.Parallel()

		admin := storedAdmin(t, username, password)
		repo := mocks.NewMockAdminRepository(t)
		repo.On("AdminByUsername", mock.Anything, username).Return(admin, nil).Once()

		svc := newSvc(repo, time.Hour)
		tok, err := svc.Login(context.Background(), model.Credentials{Username: username, Password: password})
		require.NoError(t, err)
		assert.Equal(t, username, tok.Username)
		assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, time.Minute)

		claims, err := svc.ParseToken(tok.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, claims.AdminID)
		assert.Equal(t, username, claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAdminRepository(t)
		repo.On("AdminByUsername", mock.Anything, username).Return(storedAdmin(t, username, password), nil).Once()

		_, err := newSvc(repo, time.Hour).Login(context.Background(), model.Credentials{Username: username, Password: "nope"})
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAdminRepository(t)
		repo.On("AdminByUsername", mock.Anything, "ghost").Return(nil, model.ErrNotFound).Once()

		_, err := newSvc(repo, time.Hour).Login(context.Background(), model.Credentials{Username: "ghost", Password: password})
		assert.ErrorIs(t, err, model.ErrUnauthorized)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}

func TestServiceParseToken(t *testing.T) {
	t.Parallel()

	sign := func(t *testing.T, method jwt.SigningMethod, key any, c jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, c).SignedString(key)
		require.NoError(t, err)
		return s
	}

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "expired",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "a1", ExpiresAt: past})
			},
			wantErr: model.ErrTokenExpired,
		},
		{
			name: "foreign secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("another-secret-entirely"), jwt.RegisteredClaims{Subject: "a1", ExpiresAt: future})
			},
			wantErr: model.ErrUnauthorized,
		},
		{
			name: "other hmac algorithm",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, secret, jwt.RegisteredClaims{Subject: "a1", ExpiresAt: future})
			},
			wantErr: model.ErrUnauthorized,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "a1"})
			},
			wantErr: model.ErrUnauthorized,
		},
		{
			name: "no subject",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{ExpiresAt: future})
			},
			wantErr: model.ErrUnauthorized,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not.a.jwt" },
			wantErr: model.ErrUnauthorized,
		},
	}

	svc := newSvc(nil, time.Hour)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.ParseToken(tt.token(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("expired is still unauthorized", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ParseToken(sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "a1", ExpiresAt: past}))
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}

func TestServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("hashes the password", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAdminRepository(t)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Admin) bool {
			return a.Username == "ana" && bcrypt.CompareHashAndPassword(a.PasswordHash, []byte("s3cret-pass")) == nil
		})).Return(nil).Once()

		a, err := newSvc(repo, time.Hour).Register(context.Background(), model.Credentials{Username: " ana ", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
	})

	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAdminRepository(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(model.ErrConflict).Once()

		_, err := newSvc(repo, time.Hour).Register(context.Background(), model.Credentials{Username: "ana", Password: "pw"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("missing password", func(t *testing.T) {
		t.Parallel()

		_, err := newSvc(mocks.NewMockAdminRepository(t), time.Hour).Register(context.Background(), model.Credentials{Username: "ana"})
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestServiceBootstrap(t *testing.T) {
	t.Parallel()

	creds := model.Credentials{Username: "admin", Password: "bootstrap-pass"}

	t.Run("creates when absent", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAdminRepository(t)
		repo.On("AdminByUsername", mock.Anything, "admin").Return(nil, model.ErrNotFound).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		require.NoError(t, newSvc(repo, time.Hour).Bootstrap(context.Background(), creds))
	})

	t.Run("keeps existing", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAdminRepository(t)
		repo.On("AdminByUsername", mock.Anything, "admin").Return(&model.Admin{Username: "admin"}, nil).Once()

		require.NoError(t, newSvc(repo, time.Hour).Bootstrap(context.Background(), creds))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lost race is fine", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAdminRepository(t)
		repo.On("AdminByUsername", mock.Anything, "admin").Return(nil, model.ErrNotFound).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(model.ErrConflict).Once()

		require.NoError(t, newSvc(repo, time.Hour).Bootstrap(context.Background(), creds))
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, newSvc(mocks.NewMockAdminRepository(t), time.Hour).Bootstrap(context.Background(), model.Credentials{}))
	})
}
