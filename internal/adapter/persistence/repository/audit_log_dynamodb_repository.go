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

const defaultAuditLogTableName = "audit_log"

type auditItem struct {
	ID        string `dynamodbav:"id"`
	Actor     string `dynamodbav:"actor"`
	Action    string `dynamodbav:"action"`
	Entity    string `dynamodbav:"entity"`
	EntityID  string `dynamodbav:"entity_id"`
	Detail    string `dynamodbav:"detail,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository is the append-only action log. The conditional put
// keeps it append-only even against id collisions; there is no update or
// delete path.

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOG_TABLE", defaultAuditLogTableName),
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, e entities.AuditEntry) error {
	it := auditItem{
		ID:        e.ID,
		Actor:     e.Actor,
		Action:    string(e.Action),
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *AuditLogDynamoRepository) List(ctx context.Context) ([]entities.AuditEntry, error) {
	var entries []entities.AuditEntry
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
			var it auditItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
			entries = append(entries, entities.AuditEntry{
				ID:        it.ID,
				Actor:     it.Actor,
				Action:    entities.AuditAction(it.Action),
				Entity:    it.Entity,
				EntityID:  it.EntityID,
				Detail:    it.Detail,
				CreatedAt: createdAt,
			})
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return entries, nil
}
