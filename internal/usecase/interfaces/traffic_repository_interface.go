package interfaces

import (
	"context"

	"sublime_ops/internal/domain/entities"
)

// ITrafficRepository reads the storefront traffic log. The collection is
// written by the storefront only; this service never mutates it.
type ITrafficRepository interface {
	List(ctx context.Context) ([]entities.TrafficEntry, error)
}
