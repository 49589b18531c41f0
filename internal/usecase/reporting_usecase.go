package usecase

import (
	"context"
	"sort"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"
)

const topProductsLimit = 5

// SourceBreakdown is realized revenue and fulfilled order count for one
// marketing source.
type SourceBreakdown struct {
	Source     string `json:"source"`
	RevenueCFA int64  `json:"revenue_cfa"`
	Orders     int    `json:"orders"`
}

// StatusCount is the order count for one status, across ALL statuses. Funnel
// visibility deliberately includes cancelled and pending orders.
type StatusCount struct {
	Status entities.OrderStatus `json:"status"`
	Count  int                  `json:"count"`
}

// ProductUnits is fulfilled units and revenue for one product.
type ProductUnits struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Units       int    `json:"units"`
	RevenueCFA  int64  `json:"revenue_cfa"`
}

// DailyRevenue is realized revenue for one calendar day (UTC).
type DailyRevenue struct {
	Day        string `json:"day"`
	RevenueCFA int64  `json:"revenue_cfa"`
}

// Summary aggregates the full order history and the traffic log.
//
// Revenue figures count fulfilled orders only (cash actually realized); volume
// and status figures count every order regardless of status. The asymmetry is
// intentional and must not be "fixed".
type Summary struct {
	RevenueCFA      int64             `json:"revenue_cfa"`
	FulfilledOrders int               `json:"fulfilled_orders"`
	TotalOrders     int               `json:"total_orders"`
	Visitors        int               `json:"visitors"`
	ConversionRate  float64           `json:"conversion_rate"`
	BySource        []SourceBreakdown `json:"by_source"`
	ByStatus        []StatusCount     `json:"by_status"`
	TopProducts     []ProductUnits    `json:"top_products"`
	DailyRevenue    []DailyRevenue    `json:"daily_revenue"`
}

// IReportingUseCase computes the analytics dashboard figures.

type IReportingUseCase interface {
	Summary(ctx context.Context) (Summary, error)
}

type ReportingUseCase struct {
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
	traffic  interfaces.ITrafficRepository
	log      logger.Logger
}

var _ IReportingUseCase = (*ReportingUseCase)(nil)

func NewReportingUseCase(
	orders interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	traffic interfaces.ITrafficRepository,
	log logger.Logger,
) *ReportingUseCase {
	return &ReportingUseCase{orders: orders, products: products, traffic: traffic, log: log}
}

func (u *ReportingUseCase) Summary(ctx context.Context) (Summary, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	products, err := u.products.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	visits, err := u.traffic.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		TotalOrders: len(orders),
		Visitors:    len(visits),
	}

	bySource := map[string]*SourceBreakdown{}
	byStatus := map[entities.OrderStatus]int{}
	byProduct := map[string]*ProductUnits{}
	byDay := map[string]int64{}

	for _, o := range orders {
		byStatus[o.Status]++

		if o.Status != entities.OrderStatusFulfilled {
			continue
		}
		s.RevenueCFA += o.TotalAmountCFA
		s.FulfilledOrders++

		sb, ok := bySource[o.MarketingSource]
		if !ok {
			sb = &SourceBreakdown{Source: o.MarketingSource}
			bySource[o.MarketingSource] = sb
		}
		sb.RevenueCFA += o.TotalAmountCFA
		sb.Orders++

		pu, ok := byProduct[o.ProductID]
		if !ok {
			name, known := names[o.ProductID]
			if !known {
				name = "Produit Inconnu"
			}
			pu = &ProductUnits{ProductID: o.ProductID, ProductName: name}
			byProduct[o.ProductID] = pu
		}
		pu.Units += o.QuantitySold
		pu.RevenueCFA += o.TotalAmountCFA

		byDay[o.CreatedAt.UTC().Format("2006-01-02")] += o.TotalAmountCFA
	}

	if s.Visitors > 0 {
		s.ConversionRate = float64(s.TotalOrders) / float64(s.Visitors)
	}

	for _, sb := range bySource {
		s.BySource = append(s.BySource, *sb)
	}
	sort.Slice(s.BySource, func(i, j int) bool {
		if s.BySource[i].RevenueCFA != s.BySource[j].RevenueCFA {
			return s.BySource[i].RevenueCFA > s.BySource[j].RevenueCFA
		}
		return s.BySource[i].Source < s.BySource[j].Source
	})

	for status, count := range byStatus {
		s.ByStatus = append(s.ByStatus, StatusCount{Status: status, Count: count})
	}
	sort.Slice(s.ByStatus, func(i, j int) bool {
		if s.ByStatus[i].Count != s.ByStatus[j].Count {
			return s.ByStatus[i].Count > s.ByStatus[j].Count
		}
		return s.ByStatus[i].Status < s.ByStatus[j].Status
	})

	for _, pu := range byProduct {
		s.TopProducts = append(s.TopProducts, *pu)
	}
	sort.Slice(s.TopProducts, func(i, j int) bool {
		if s.TopProducts[i].Units != s.TopProducts[j].Units {
			return s.TopProducts[i].Units > s.TopProducts[j].Units
		}
		return s.TopProducts[i].ProductName < s.TopProducts[j].ProductName
	})
	if len(s.TopProducts) > topProductsLimit {
		s.TopProducts = s.TopProducts[:topProductsLimit]
	}

	for day, revenue := range byDay {
		s.DailyRevenue = append(s.DailyRevenue, DailyRevenue{Day: day, RevenueCFA: revenue})
	}
	sort.Slice(s.DailyRevenue, func(i, j int) bool {
		return s.DailyRevenue[i].Day < s.DailyRevenue[j].Day
	})

	return s, nil
}
