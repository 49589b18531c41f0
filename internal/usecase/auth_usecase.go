package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordTooShort   = errors.New("password too short")
)

const minPasswordLength = 8

const tokenIssuer = "sublime-ops"

// IAuthUseCase issues and validates staff session tokens. Every staff member
// has their own credentials; sessions are signed JWTs with an expiry, checked
// on every mutating call.

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, err error)
	ValidateToken(token string) (username string, err error)
	EnsureBootstrapUser(ctx context.Context, username, password string) error
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	secret   []byte
	tokenTTL time.Duration
	log      logger.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, secret string, tokenTTL time.Duration, log logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, secret: []byte(secret), tokenTTL: tokenTTL, log: log}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, err
	}
	if user.Username == "" {
		// Hash anyway so a missing user costs the same as a wrong password.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinval"), []byte(password))
		return "", time.Time{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		u.log.Warn("failed login attempt", logger.String("username", username))
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(u.tokenTTL)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	u.log.Info("staff login", logger.String("username", user.Username))
	return token, expiresAt, nil
}

func (u *AuthUseCase) ValidateToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// EnsureBootstrapUser creates the first staff account when the users table is
// empty, so a fresh deployment is reachable. It is a no-op once any user
// exists or when no bootstrap credentials are configured.
func (u *AuthUseCase) EnsureBootstrapUser(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameRequired
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	hasAny, err := u.users.HasAny(ctx)
	if err != nil {
		return err
	}
	if hasAny {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = u.users.Create(ctx, entities.StaffUser{
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  username,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateID) {
			// Another instance won the race; fine.
			return nil
		}
		return err
	}

	u.log.Info("bootstrap staff user created", logger.String("username", username))
	return nil
}
