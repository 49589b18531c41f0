package interfaces

import (
	"context"

	"sublime_ops/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for staff accounts.
type IUserRepository interface {
	Create(ctx context.Context, u entities.StaffUser) (entities.StaffUser, error)
	GetByUsername(ctx context.Context, username string) (entities.StaffUser, error)
	HasAny(ctx context.Context) (bool, error)
}
