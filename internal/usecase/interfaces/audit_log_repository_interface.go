package interfaces

import (
	"context"

	"sublime_ops/internal/domain/entities"
)

// IAuditLogRepository is the append-only action log. Entries are never
// updated or deleted.
type IAuditLogRepository interface {
	Append(ctx context.Context, e entities.AuditEntry) error
	List(ctx context.Context) ([]entities.AuditEntry, error)
}
