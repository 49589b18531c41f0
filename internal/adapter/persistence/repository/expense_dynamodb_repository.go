package repository

import (
	"context"
	"time"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCashflowTableName = "cashflow"

type expenseItem struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	Category    string `dynamodbav:"category"`
	AmountCFA   int64  `dynamodbav:"amount_cfa"`
	Description string `dynamodbav:"description,omitempty"`
	Date        string `dynamodbav:"date"`
}

// ExpenseDynamoRepository persists cashflow expenses in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CASHFLOW_TABLE", defaultCashflowTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	it := toExpenseItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Expense{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	var expenses []entities.Expense
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
			var it expenseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			expenses = append(expenses, fromExpenseItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return expenses, nil
}

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:          e.ID,
		Type:        e.Type,
		Category:    string(e.Category),
		AmountCFA:   e.AmountCFA,
		Description: e.Description,
		Date:        e.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Expense{
		ID:          it.ID,
		Type:        it.Type,
		Category:    entities.ExpenseCategory(it.Category),
		AmountCFA:   it.AmountCFA,
		Description: it.Description,
		Date:        date,
	}
}
