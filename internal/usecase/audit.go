package usecase

import (
	"context"
	"time"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"

	"github.com/google/uuid"
)

// auditTrail appends entries to the action log on behalf of the use cases.
// Append failures never fail the business operation; they are logged and
// dropped.
type auditTrail struct {
	repo interfaces.IAuditLogRepository
	log  logger.Logger
}

func (a auditTrail) append(ctx context.Context, e entities.AuditEntry) {
	if a.repo == nil {
		return
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	if err := a.repo.Append(ctx, e); err != nil {
		a.log.Error("audit append failed",
			logger.String("action", string(e.Action)),
			logger.String("entity_id", e.EntityID),
			logger.Error(err),
		)
	}
}
