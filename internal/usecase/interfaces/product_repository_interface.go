package interfaces

import (
	"context"
	"errors"

	"sublime_ops/internal/domain/entities"
)

// ErrDuplicateID: a conditional insert found the id already in use.
var ErrDuplicateID = errors.New("identifier already in use")

// IProductRepository abstracts DynamoDB persistence for Product.
//
// The operations backend must be able to:
//   - list the full inventory for the stock page and reporting joins
//   - create a product (rejecting duplicate ids)
//   - add received stock and refresh prices on an existing product
//   - delete a product that no historical order references
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	AddStock(ctx context.Context, id string, qty int, buyPriceCFA, sellPriceCFA int64) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
