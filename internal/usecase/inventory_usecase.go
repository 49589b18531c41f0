package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrProductExists        = errors.New("product already exists")
	ErrProductReferenced    = errors.New("product referenced by orders")
	ErrProductNameRequired  = errors.New("product name is required")
	ErrInvalidStockQuantity = errors.New("invalid stock quantity")
	ErrInvalidPrice         = errors.New("invalid price")
)

// IInventoryUseCase exposes the stock page operations:
//   - list products
//   - restock by product name (top up an existing product, or create it)
//   - create a product explicitly (duplicate ids rejected)
//   - delete a product, refused while historical orders still reference it

type IInventoryUseCase interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	Restock(ctx context.Context, actor, name string, qty int, buyPriceCFA, sellPriceCFA int64) (entities.Product, bool, error)
	CreateProduct(ctx context.Context, actor, name string, qty int, buyPriceCFA, sellPriceCFA int64) (entities.Product, error)
	DeleteProduct(ctx context.Context, actor, id string) error
}

type InventoryUseCase struct {
	products interfaces.IProductRepository
	orders   interfaces.IOrderRepository
	audit    auditTrail
	log      logger.Logger
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(
	products interfaces.IProductRepository,
	orders interfaces.IOrderRepository,
	audit interfaces.IAuditLogRepository,
	log logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		products: products,
		orders:   orders,
		audit:    auditTrail{repo: audit, log: log},
		log:      log,
	}
}

func (u *InventoryUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products, nil
}

// Restock tops up stock for the product whose name matches case-insensitively,
// refreshing both prices, or creates the product when no match exists. The
// returned bool reports whether a new product was created.
func (u *InventoryUseCase) Restock(ctx context.Context, actor, name string, qty int, buyPriceCFA, sellPriceCFA int64) (entities.Product, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Product{}, false, ErrProductNameRequired
	}
	if qty < 1 {
		return entities.Product{}, false, ErrInvalidStockQuantity
	}
	if buyPriceCFA < 0 || sellPriceCFA < 0 {
		return entities.Product{}, false, ErrInvalidPrice
	}

	products, err := u.products.List(ctx)
	if err != nil {
		return entities.Product{}, false, err
	}

	for _, p := range products {
		if strings.EqualFold(p.Name, name) {
			updated, err := u.products.AddStock(ctx, p.ID, qty, buyPriceCFA, sellPriceCFA)
			if err != nil {
				return entities.Product{}, false, err
			}
			if updated.ID == "" {
				return entities.Product{}, false, ErrProductNotFound
			}
			u.audit.append(ctx, entities.AuditEntry{
				Actor:    actor,
				Action:   entities.AuditActionRestock,
				Entity:   "product",
				EntityID: updated.ID,
				Detail:   fmt.Sprintf("added=%d new_quantity=%d", qty, updated.Quantity),
			})
			u.log.Info("product restocked",
				logger.String("product_id", updated.ID),
				logger.Int("added", qty),
				logger.Int("quantity", updated.Quantity),
			)
			return updated, false, nil
		}
	}

	created, err := u.CreateProduct(ctx, actor, name, qty, buyPriceCFA, sellPriceCFA)
	if err != nil {
		return entities.Product{}, false, err
	}
	return created, true, nil
}

func (u *InventoryUseCase) CreateProduct(ctx context.Context, actor, name string, qty int, buyPriceCFA, sellPriceCFA int64) (entities.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Product{}, ErrProductNameRequired
	}
	if qty < 0 {
		return entities.Product{}, ErrInvalidStockQuantity
	}
	if buyPriceCFA < 0 || sellPriceCFA < 0 {
		return entities.Product{}, ErrInvalidPrice
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:           uuid.NewString(),
		Name:         name,
		Quantity:     qty,
		BuyPriceCFA:  buyPriceCFA,
		SellPriceCFA: sellPriceCFA,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateID) {
			return entities.Product{}, ErrProductExists
		}
		return entities.Product{}, err
	}

	u.audit.append(ctx, entities.AuditEntry{
		Actor:    actor,
		Action:   entities.AuditActionCreateProduct,
		Entity:   "product",
		EntityID: created.ID,
		Detail:   fmt.Sprintf("name=%s quantity=%d", created.Name, created.Quantity),
	})
	u.log.Info("product created", logger.String("product_id", created.ID), logger.String("name", created.Name))
	return created, nil
}

// DeleteProduct removes a product from the catalogue. Products referenced by
// historical orders are never deletable; that case is reported distinctly so
// the operator knows the row is retained for reporting.
func (u *InventoryUseCase) DeleteProduct(ctx context.Context, actor, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrProductNotFound
	}

	existing, err := u.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProductNotFound
	}

	refs, err := u.orders.ListByProductID(ctx, id)
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		return ErrProductReferenced
	}

	if err := u.products.Delete(ctx, id); err != nil {
		return err
	}

	u.audit.append(ctx, entities.AuditEntry{
		Actor:    actor,
		Action:   entities.AuditActionDeleteProduct,
		Entity:   "product",
		EntityID: id,
		Detail:   fmt.Sprintf("name=%s", existing.Name),
	})
	u.log.Info("product deleted", logger.String("product_id", id))
	return nil
}
