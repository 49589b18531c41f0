package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"
	"sublime_ops/pkg/logger"
)

var (
	ErrEmptyQuestion  = errors.New("empty question")
	ErrUnusablePlan   = errors.New("model output is not a usable query plan")
	ErrTextGenMissing = errors.New("text generation service not configured")
)

// Plan vocabulary. Model output outside these sets is rejected, never
// reinterpreted.
const (
	MetricRevenue = "revenue"
	MetricUnits   = "units"
	MetricOrders  = "orders"

	GroupBySource  = "marketing_source"
	GroupByStatus  = "status"
	GroupByProduct = "product"
	GroupByDay     = "day"
	GroupByNone    = "none"

	ChartBar   = "bar"
	ChartPie   = "pie"
	ChartLine  = "line"
	ChartTable = "table"
)

// QueryPlan is the whole surface the model controls: one aggregate, one
// grouping, one chart kind. The plan is data, not code: it is validated
// against the enumerations above and executed only through the aggregation
// below. Arbitrary model output is never evaluated.
type QueryPlan struct {
	Metric  string `json:"metric"`
	GroupBy string `json:"group_by"`
	Chart   string `json:"chart"`
}

// PlanRow is one aggregated result row.
type PlanRow struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// AssistantAnswer is the executed plan with its rows.
type AssistantAnswer struct {
	Question string    `json:"question"`
	Plan     QueryPlan `json:"plan"`
	Rows     []PlanRow `json:"rows"`
}

// IAssistantUseCase answers ad-hoc analytics questions by asking the text
// model for a constrained query plan and executing that plan against the
// order history.

type IAssistantUseCase interface {
	Ask(ctx context.Context, question string) (AssistantAnswer, error)
}

type AssistantUseCase struct {
	textgen  interfaces.ITextGenerator
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
	log      logger.Logger
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(
	textgen interfaces.ITextGenerator,
	orders interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	log logger.Logger,
) *AssistantUseCase {
	return &AssistantUseCase{textgen: textgen, orders: orders, products: products, log: log}
}

const planPromptTemplate = `You translate an analytics question about a small retail shop into a JSON query plan.
Respond with a single JSON object and nothing else, with exactly these keys:
  "metric": one of "revenue", "units", "orders"
  "group_by": one of "marketing_source", "status", "product", "day", "none"
  "chart": one of "bar", "pie", "line", "table"
"revenue" and "units" cover delivered sales only; "orders" counts every order.

Question: %s`

func (u *AssistantUseCase) Ask(ctx context.Context, question string) (AssistantAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return AssistantAnswer{}, ErrEmptyQuestion
	}
	if u.textgen == nil {
		return AssistantAnswer{}, ErrTextGenMissing
	}

	raw, err := u.textgen.Generate(ctx, fmt.Sprintf(planPromptTemplate, question))
	if err != nil {
		return AssistantAnswer{}, err
	}

	plan, err := ParseQueryPlan(raw)
	if err != nil {
		u.log.Warn("assistant produced unusable plan",
			logger.String("question", question),
			logger.Error(err),
		)
		return AssistantAnswer{}, err
	}

	rows, err := u.execute(ctx, plan)
	if err != nil {
		return AssistantAnswer{}, err
	}

	u.log.Info("assistant answered",
		logger.String("metric", plan.Metric),
		logger.String("group_by", plan.GroupBy),
		logger.Int("rows", len(rows)),
	)
	return AssistantAnswer{Question: question, Plan: plan, Rows: rows}, nil
}

// ParseQueryPlan extracts and validates a query plan from raw model output.
// Models tend to wrap JSON in prose or code fences, so the first balanced
// object is taken; everything else about the output is ignored.
func ParseQueryPlan(raw string) (QueryPlan, error) {
	obj, ok := firstJSONObject(raw)
	if !ok {
		return QueryPlan{}, fmt.Errorf("%w: no JSON object found", ErrUnusablePlan)
	}

	var plan QueryPlan
	if err := json.Unmarshal([]byte(obj), &plan); err != nil {
		return QueryPlan{}, fmt.Errorf("%w: %v", ErrUnusablePlan, err)
	}

	plan.Metric = strings.ToLower(strings.TrimSpace(plan.Metric))
	plan.GroupBy = strings.ToLower(strings.TrimSpace(plan.GroupBy))
	plan.Chart = strings.ToLower(strings.TrimSpace(plan.Chart))

	switch plan.Metric {
	case MetricRevenue, MetricUnits, MetricOrders:
	default:
		return QueryPlan{}, fmt.Errorf("%w: unknown metric %q", ErrUnusablePlan, plan.Metric)
	}
	switch plan.GroupBy {
	case GroupBySource, GroupByStatus, GroupByProduct, GroupByDay, GroupByNone:
	default:
		return QueryPlan{}, fmt.Errorf("%w: unknown group_by %q", ErrUnusablePlan, plan.GroupBy)
	}
	switch plan.Chart {
	case ChartBar, ChartPie, ChartLine, ChartTable:
	default:
		return QueryPlan{}, fmt.Errorf("%w: unknown chart %q", ErrUnusablePlan, plan.Chart)
	}
	return plan, nil
}

func firstJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}

// execute runs a validated plan. Revenue and units aggregate fulfilled orders
// only; the orders metric counts every status, matching the reporting rules.
func (u *AssistantUseCase) execute(ctx context.Context, plan QueryPlan) ([]PlanRow, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	if plan.GroupBy == GroupByProduct {
		products, err := u.products.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			names[p.ID] = p.Name
		}
	}

	totals := map[string]int64{}
	for _, o := range orders {
		if plan.Metric != MetricOrders && o.Status != entities.OrderStatusFulfilled {
			continue
		}

		var label string
		switch plan.GroupBy {
		case GroupBySource:
			label = o.MarketingSource
		case GroupByStatus:
			label = string(o.Status)
		case GroupByProduct:
			label = names[o.ProductID]
			if label == "" {
				label = "Produit Inconnu"
			}
		case GroupByDay:
			label = o.CreatedAt.UTC().Format("2006-01-02")
		case GroupByNone:
			label = "total"
		}

		switch plan.Metric {
		case MetricRevenue:
			totals[label] += o.TotalAmountCFA
		case MetricUnits:
			totals[label] += int64(o.QuantitySold)
		case MetricOrders:
			totals[label]++
		}
	}

	rows := make([]PlanRow, 0, len(totals))
	for label, value := range totals {
		rows = append(rows, PlanRow{Label: label, Value: value})
	}
	if plan.GroupBy == GroupByDay {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	} else {
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Value != rows[j].Value {
				return rows[i].Value > rows[j].Value
			}
			return rows[i].Label < rows[j].Label
		})
	}
	return rows, nil
}
