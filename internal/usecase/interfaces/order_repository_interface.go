package interfaces

import (
	"context"
	"errors"

	"sublime_ops/internal/domain/entities"
)

// Conditional-write failures the order repository reports with enough
// precision for the use case to tell the operator what actually happened.
var (
	// ErrStockGuardFailed: the inventory side of the fulfillment transaction
	// found quantity < quantity_sold at commit time.
	ErrStockGuardFailed = errors.New("stock guard failed")
	// ErrOrderNotOpen: the order side found a terminal status (or a missing
	// row) at commit time.
	ErrOrderNotOpen = errors.New("order not open")
)

// FulfillCommand carries the values for the single atomic fulfillment write:
// decrement product stock by Quantity and move the order to its fulfilled
// terminal status with UnitBuyCostCFA stamped as the cost snapshot.
type FulfillCommand struct {
	OrderID        string
	ProductID      string
	Quantity       int
	UnitBuyCostCFA int64
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Fulfill must be a single transactional unit: the stock decrement (guarded by
// quantity >= :qty) and the status transition (guarded by a non-terminal
// status) either both commit or neither does.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByProductID(ctx context.Context, productID string) ([]entities.Order, error)
	Fulfill(ctx context.Context, cmd FulfillCommand) error
	UpdateStatusIfOpen(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
