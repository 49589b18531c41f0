package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersProductIDIndex   = "product_id-index"
)

type orderItem struct {
	ID                string `dynamodbav:"id"`
	ProductID         string `dynamodbav:"product_id"`
	QuantitySold      int    `dynamodbav:"quantity_sold"`
	CustomerPhone     string `dynamodbav:"customer_phone"`
	MarketingSource   string `dynamodbav:"marketing_source"`
	Status            string `dynamodbav:"status"`
	TotalAmountCFA    int64  `dynamodbav:"total_amount_cfa"`
	UnitBuyCostAtSale *int64 `dynamodbav:"unit_buy_cost_at_sale,omitempty"`
	OrderRef          string `dynamodbav:"order_ref,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: product_id-index (PK: product_id)
//
// Fulfill additionally writes the inventory table: the stock decrement and the
// status transition go through one TransactWriteItems call so partial
// fulfillment (stock gone, order still pending) cannot happen.

type OrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	inventoryTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		inventoryTable: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListByProductID(ctx context.Context, productID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersProductIDIndex),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

// Fulfill commits the stock decrement and the terminal transition as one
// transaction. The inventory update is guarded by quantity >= :qty, the order
// update by a non-terminal status; either guard failing cancels both writes.
func (r *OrderDynamoRepository) Fulfill(ctx context.Context, cmd interfaces.FulfillCommand) error {
	qty := strconv.Itoa(cmd.Quantity)

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.inventoryTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: cmd.ProductID},
					},
					UpdateExpression:    aws.String("SET quantity = quantity - :qty, updated_at = :now"),
					ConditionExpression: aws.String("attribute_exists(#id) AND quantity >= :qty"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":qty": &types.AttributeValueMemberN{Value: qty},
						":now": &types.AttributeValueMemberS{Value: nowRFC3339Nano()},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: cmd.OrderID},
					},
					UpdateExpression:    aws.String("SET #status = :fulfilled, unit_buy_cost_at_sale = :buy"),
					ConditionExpression: aws.String("attribute_exists(#id) AND NOT #status IN (:fulfilled, :cancelled_customer, :cancelled_stock)"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":fulfilled":          &types.AttributeValueMemberS{Value: string(entities.OrderStatusFulfilled)},
						":cancelled_customer": &types.AttributeValueMemberS{Value: string(entities.OrderStatusCancelledCustomer)},
						":cancelled_stock":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusCancelledStockout)},
						":buy":                &types.AttributeValueMemberN{Value: strconv.FormatInt(cmd.UnitBuyCostCFA, 10)},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// Reason order mirrors TransactItems: [0] inventory, [1] order.
			if len(tce.CancellationReasons) > 0 && isConditionalCheckFailed(tce.CancellationReasons[0]) {
				return interfaces.ErrStockGuardFailed
			}
			if len(tce.CancellationReasons) > 1 && isConditionalCheckFailed(tce.CancellationReasons[1]) {
				return interfaces.ErrOrderNotOpen
			}
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) UpdateStatusIfOpen(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status"),
		ConditionExpression: aws.String("attribute_exists(#id) AND NOT #status IN (:fulfilled, :cancelled_customer, :cancelled_stock)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":             &types.AttributeValueMemberS{Value: string(status)},
			":fulfilled":          &types.AttributeValueMemberS{Value: string(entities.OrderStatusFulfilled)},
			":cancelled_customer": &types.AttributeValueMemberS{Value: string(entities.OrderStatusCancelledCustomer)},
			":cancelled_stock":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusCancelledStockout)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrOrderNotOpen
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func isConditionalCheckFailed(reason types.CancellationReason) bool {
	return reason.Code != nil && *reason.Code == "ConditionalCheckFailed"
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	o := entities.Order{
		ID:              it.ID,
		ProductID:       it.ProductID,
		QuantitySold:    it.QuantitySold,
		CustomerPhone:   it.CustomerPhone,
		MarketingSource: it.MarketingSource,
		Status:          entities.OrderStatus(it.Status),
		TotalAmountCFA:  it.TotalAmountCFA,
		OrderRef:        it.OrderRef,
		CreatedAt:       createdAt,
	}
	if it.UnitBuyCostAtSale != nil {
		o.UnitBuyCostAtSale = *it.UnitBuyCostAtSale
		o.HasCostSnapshot = true
	}
	return o
}
