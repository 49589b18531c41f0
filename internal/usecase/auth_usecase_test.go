package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"
	mock_interfaces "sublime_ops/internal/usecase/interfaces/mocks"
	"sublime_ops/pkg/logger"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(hash)
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("blank credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, "secret", time.Hour, logger.NewNop())
		_, _, err := uc.Login(context.Background(), "  ", "pass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour, logger.NewNop())

		users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.StaffUser{}, nil)

		_, _, err := uc.Login(context.Background(), "ghost", "whatever1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour, logger.NewNop())

		users.EXPECT().GetByUsername(gomock.Any(), "aminata").Return(entities.StaffUser{
			Username: "aminata", PasswordHash: hashFor(t, "correct horse"),
		}, nil)

		_, _, err := uc.Login(context.Background(), "aminata", "wrong horse")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("issued token validates back to the username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour, logger.NewNop())

		users.EXPECT().GetByUsername(gomock.Any(), "aminata").Return(entities.StaffUser{
			Username: "aminata", PasswordHash: hashFor(t, "correct horse"),
		}, nil)

		token, expiresAt, err := uc.Login(context.Background(), "aminata", "correct horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" || !expiresAt.After(time.Now()) {
			t.Fatalf("expected token with a future expiry")
		}

		username, err := uc.ValidateToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if username != "aminata" {
			t.Fatalf("expected aminata, got %q", username)
		}
	})
}

func TestAuthUseCase_ValidateToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, "secret", time.Hour, logger.NewNop())
		_, err := uc.ValidateToken("not-a-jwt")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		issuer := NewAuthUseCase(users, "secret-a", time.Hour, logger.NewNop())
		verifier := NewAuthUseCase(nil, "secret-b", time.Hour, logger.NewNop())

		users.EXPECT().GetByUsername(gomock.Any(), "aminata").Return(entities.StaffUser{
			Username: "aminata", PasswordHash: hashFor(t, "correct horse"),
		}, nil)

		token, _, err := issuer.Login(context.Background(), "aminata", "correct horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = verifier.ValidateToken(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", -time.Minute, logger.NewNop())

		users.EXPECT().GetByUsername(gomock.Any(), "aminata").Return(entities.StaffUser{
			Username: "aminata", PasswordHash: hashFor(t, "correct horse"),
		}, nil)

		token, _, err := uc.Login(context.Background(), "aminata", "correct horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = uc.ValidateToken(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestAuthUseCase_EnsureBootstrapUser(t *testing.T) {
	t.Run("blank username", func(t *testing.T) {
		uc := NewAuthUseCase(nil, "secret", time.Hour, logger.NewNop())
		err := uc.EnsureBootstrapUser(context.Background(), " ", "longenough")
		if !errors.Is(err, ErrUsernameRequired) {
			t.Fatalf("expected ErrUsernameRequired, got %v", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, "secret", time.Hour, logger.NewNop())
		err := uc.EnsureBootstrapUser(context.Background(), "admin", "short")
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("no-op when users already exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour, logger.NewNop())

		users.EXPECT().HasAny(gomock.Any()).Return(true, nil)

		if err := uc.EnsureBootstrapUser(context.Background(), "admin", "longenough"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("creates hashed user on an empty table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour, logger.NewNop())

		users.EXPECT().HasAny(gomock.Any()).Return(false, nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.StaffUser{})).DoAndReturn(
			func(_ context.Context, u entities.StaffUser) (entities.StaffUser, error) {
				if u.Username != "admin" {
					t.Fatalf("unexpected username: %q", u.Username)
				}
				if u.PasswordHash == "longenough" || u.PasswordHash == "" {
					t.Fatalf("expected a bcrypt hash, got %q", u.PasswordHash)
				}
				if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("longenough")) != nil {
					t.Fatalf("hash does not verify")
				}
				return u, nil
			},
		)

		if err := uc.EnsureBootstrapUser(context.Background(), "admin", "longenough"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost creation race is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, "secret", time.Hour, logger.NewNop())

		users.EXPECT().HasAny(gomock.Any()).Return(false, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.StaffUser{}, interfaces.ErrDuplicateID)

		if err := uc.EnsureBootstrapUser(context.Background(), "admin", "longenough"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
