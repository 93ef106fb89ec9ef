package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/platform/logger"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

type AdminRepository interface {
	Create(ctx context.Context, a *model.Admin) error
	AdminByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type service struct {
	repo           AdminRepository
	secret         []byte
	ttl            time.Duration
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewAuthService(
	repository AdminRepository,
	secret []byte,
	ttl time.Duration,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		secret:         secret,
		ttl:            ttl,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Bootstrap creates the configured admin unless an admin with that name
// already exists. Empty credentials make it a no-op.
func (svc *service) Bootstrap(ctx context.Context, creds model.Credentials) error {
	const op = "auth.service.Bootstrap"

	if creds.Username == "" || creds.Password == "" {
		return nil
	}
	log := logger.With(logger.String("username", creds.Username))

	rctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	_, err := svc.repo.AdminByUsername(rctx, creds.Username)
	cancel()
	switch {
	case err == nil:
		log.Debug(ctx, "bootstrap admin already present")
		return nil
	case !errors.Is(err, model.ErrNotFound):
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := svc.Register(ctx, creds); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "bootstrap admin created")
	return nil
}

func (svc *service) Register(ctx context.Context, creds model.Credentials) (*model.Admin, error) {
	const op = "auth.service.Register"

	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return nil, fmt.Errorf("%s: username and password are required: %w", op, model.ErrValidation)
	}
	if len(creds.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%s: password longer than %d bytes: %w", op, maxPasswordBytes, model.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: hash password: %w", op, err)
	}

	a := &model.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Create(ctx, a); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			logger.Error(ctx, "repository create admin", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (svc *service) Login(ctx context.Context, creds model.Credentials) (*model.Token, error) {
	const op = "auth.service.Login"

	rctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	a, err := svc.repo.AdminByUsername(rctx, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%s: invalid credentials: %w", op, model.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(creds.Password)); err != nil {
		logger.Warn(ctx, "login rejected", logger.String("username", a.Username))
		return nil, fmt.Errorf("%s: invalid credentials: %w", op, model.ErrUnauthorized)
	}

	now := time.Now()
	expiresAt := now.Add(svc.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: a.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := tok.SignedString(svc.secret)
	if err != nil {
		return nil, fmt.Errorf("%s: sign token: %w", op, err)
	}

	return &model.Token{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		Username:    a.Username,
	}, nil
}

// ParseToken verifies an HS256 token. Expired tokens yield
// model.ErrTokenExpired, every other failure model.ErrUnauthorized.
func (svc *service) ParseToken(token string) (*model.Claims, error) {
	const op = "auth.service.ParseToken"

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return svc.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrUnauthorized, err)
	}
	if c.Subject == "" {
		return nil, fmt.Errorf("%s: token without subject: %w", op, model.ErrUnauthorized)
	}

	return &model.Claims{AdminID: c.Subject, Username: c.Username}, nil
}
