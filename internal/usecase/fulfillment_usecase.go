package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderAlreadyClosed   = errors.New("order already closed")
	ErrProductNotFound      = errors.New("product not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrPhoneRequired        = errors.New("customer phone is required")
	ErrProductRequired      = errors.New("product is required")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrSaleProcedureMissing = errors.New("sale procedure not configured")
)

// ActionableOrder is a pending order joined with the live product fields the
// operator needs to decide on it.
type ActionableOrder struct {
	Order        entities.Order
	ProductName  string
	CurrentStock int
	BuyPriceCFA  int64
}

// IFulfillmentUseCase exposes the order review-and-fulfillment workflow:
//   - list every order still awaiting a decision
//   - fulfill (guarded stock decrement + terminal transition, atomically)
//   - cancel on the customer's behalf (status only, stock untouched)
//   - record a staff-taken sale through the external atomic procedure

type IFulfillmentUseCase interface {
	ListActionable(ctx context.Context, search string) ([]ActionableOrder, error)
	Fulfill(ctx context.Context, actor, orderID string) (entities.Order, error)
	Cancel(ctx context.Context, actor, orderID string) (entities.Order, error)
	RecordManualSale(ctx context.Context, actor string, req interfaces.SaleRequest) (interfaces.SaleResult, error)
}

type FulfillmentUseCase struct {
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
	saleProc interfaces.ISaleProcedure
	audit    auditTrail
	log      logger.Logger
}

var _ IFulfillmentUseCase = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(
	orders interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	saleProc interfaces.ISaleProcedure,
	audit interfaces.IAuditLogRepository,
	log logger.Logger,
) *FulfillmentUseCase {
	return &FulfillmentUseCase{
		orders:   orders,
		products: products,
		saleProc: saleProc,
		audit:    auditTrail{repo: audit, log: log},
		log:      log,
	}
}

// ListActionable returns every non-terminal order, newest first. A non-empty
// search narrows the set by case-insensitive substring match on the customer
// phone, the order reference, or the product name.
func (u *FulfillmentUseCase) ListActionable(ctx context.Context, search string) ([]ActionableOrder, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	products, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]ActionableOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status.IsTerminal() {
			continue
		}

		p, ok := byID[o.ProductID]
		name := p.Name
		if !ok {
			name = "Produit Inconnu"
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(o.CustomerPhone), search) &&
			!strings.Contains(strings.ToLower(o.OrderRef), search) &&
			!strings.Contains(strings.ToLower(name), search) {
			continue
		}

		out = append(out, ActionableOrder{
			Order:        o,
			ProductName:  name,
			CurrentStock: p.Quantity,
			BuyPriceCFA:  p.BuyPriceCFA,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Order.CreatedAt.After(out[j].Order.CreatedAt)
	})
	return out, nil
}

// Fulfill moves a pending order to its fulfilled terminal status. The stock
// guard, the decrement and the status transition commit as one transactional
// write; on a stock shortfall nothing is written and ErrInsufficientStock is
// returned. A second Fulfill on the same order is rejected with
// ErrOrderAlreadyClosed.
func (u *FulfillmentUseCase) Fulfill(ctx context.Context, actor, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Status.IsTerminal() {
		return entities.Order{}, ErrOrderAlreadyClosed
	}

	product, err := u.products.GetByID(ctx, order.ProductID)
	if err != nil {
		return entities.Order{}, err
	}
	if product.ID == "" {
		return entities.Order{}, ErrProductNotFound
	}
	if product.Quantity < order.QuantitySold {
		return entities.Order{}, ErrInsufficientStock
	}

	// The cost snapshot uses the buy price read above; the decrement does not
	// change it.
	err = u.orders.Fulfill(ctx, interfaces.FulfillCommand{
		OrderID:        order.ID,
		ProductID:      product.ID,
		Quantity:       order.QuantitySold,
		UnitBuyCostCFA: product.BuyPriceCFA,
	})
	switch {
	case errors.Is(err, interfaces.ErrStockGuardFailed):
		return entities.Order{}, ErrInsufficientStock
	case errors.Is(err, interfaces.ErrOrderNotOpen):
		return entities.Order{}, ErrOrderAlreadyClosed
	case err != nil:
		return entities.Order{}, err
	}

	updated, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		// The transaction committed; surface the fresh-read failure but log it
		// for the audit trail gap it leaves.
		u.log.Error("fulfilled order re-read failed", logger.String("order_id", orderID), logger.Error(err))
		return entities.Order{}, err
	}

	u.audit.append(ctx, entities.AuditEntry{
		Actor:    actor,
		Action:   entities.AuditActionFulfillOrder,
		Entity:   "order",
		EntityID: order.ID,
		Detail:   fmt.Sprintf("product=%s qty=%d unit_buy_cost=%d", product.ID, order.QuantitySold, product.BuyPriceCFA),
	})
	u.log.Info("order fulfilled",
		logger.String("order_id", order.ID),
		logger.String("product_id", product.ID),
		logger.Int("quantity", order.QuantitySold),
	)
	return updated, nil
}

// Cancel marks an open order as cancelled by the customer. Stock is never
// touched.
func (u *FulfillmentUseCase) Cancel(ctx context.Context, actor, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	updated, err := u.orders.UpdateStatusIfOpen(ctx, orderID, entities.OrderStatusCancelledCustomer)
	if errors.Is(err, interfaces.ErrOrderNotOpen) {
		// Distinguish a missing order from a closed one for the operator.
		existing, getErr := u.orders.GetByID(ctx, orderID)
		if getErr != nil {
			return entities.Order{}, getErr
		}
		if existing.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		return entities.Order{}, ErrOrderAlreadyClosed
	}
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.audit.append(ctx, entities.AuditEntry{
		Actor:    actor,
		Action:   entities.AuditActionCancelOrder,
		Entity:   "order",
		EntityID: updated.ID,
	})
	u.log.Info("order cancelled by customer", logger.String("order_id", updated.ID))
	return updated, nil
}

// RecordManualSale delegates a staff-taken sale to the store-side atomic
// procedure. Validation here stays minimal on purpose: the procedure owns the
// stock guard and reports failures through its structured result.
func (u *FulfillmentUseCase) RecordManualSale(ctx context.Context, actor string, req interfaces.SaleRequest) (interfaces.SaleResult, error) {
	req.Phone = strings.TrimSpace(req.Phone)
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.Phone == "" {
		return interfaces.SaleResult{}, ErrPhoneRequired
	}
	if req.ProductID == "" {
		return interfaces.SaleResult{}, ErrProductRequired
	}
	if req.Quantity <= 0 {
		return interfaces.SaleResult{}, ErrInvalidQuantity
	}
	if u.saleProc == nil {
		return interfaces.SaleResult{}, ErrSaleProcedureMissing
	}

	res, err := u.saleProc.ProcessSale(ctx, req)
	if err != nil {
		return interfaces.SaleResult{}, err
	}

	if res.Success {
		u.audit.append(ctx, entities.AuditEntry{
			Actor:    actor,
			Action:   entities.AuditActionManualSale,
			Entity:   "order",
			EntityID: req.ProductID,
			Detail:   fmt.Sprintf("qty=%d total=%d source=%s", req.Quantity, req.TotalCFA, req.Source),
		})
		u.log.Info("manual sale recorded",
			logger.String("product_id", req.ProductID),
			logger.Int("quantity", req.Quantity),
			logger.Int64("total_cfa", req.TotalCFA),
		)
	} else {
		u.log.Warn("manual sale rejected by procedure", logger.String("message", res.Message))
	}
	return res, nil
}
