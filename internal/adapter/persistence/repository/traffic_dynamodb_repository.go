package repository

import (
	"context"

	"sublime_ops/internal/domain/entities"
	"sublime_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTrafficTableName = "traffic"

type trafficItem struct {
	Source     string `dynamodbav:"source"`
	DeviceType string `dynamodbav:"device_type"`
	OS         string `dynamodbav:"os"`
}

// TrafficDynamoRepository reads the storefront traffic log. The storefront
// owns the writes; this repository only scans.

type TrafficDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITrafficRepository = (*TrafficDynamoRepository)(nil)

func NewTrafficDynamoRepository(ddb *dynamodb.Client) *TrafficDynamoRepository {
	return &TrafficDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRAFFIC_TABLE", defaultTrafficTableName),
	}
}

func (r *TrafficDynamoRepository) List(ctx context.Context) ([]entities.TrafficEntry, error) {
	var visits []entities.TrafficEntry
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
			var it trafficItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			visits = append(visits, entities.TrafficEntry{
				Source:     it.Source,
				DeviceType: it.DeviceType,
				OS:         it.OS,
			})
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return visits, nil
}
