package database

import (
	"context"

	appconfig "sublime_ops/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client every repository shares.
//
// With an empty Endpoint the client talks to the real AWS service; a non-empty
// Endpoint points it at a local DynamoDB, whose credentials are not validated
// but still required by the SDK.
func ConnectDynamoDB(ctx context.Context, dbCfg appconfig.DatabaseConfig) (*dynamodb.Client, error) {
	creds := credentials.NewStaticCredentialsProvider(
		dbCfg.AccessKeyID,
		dbCfg.SecretAccessKey,
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(dbCfg.Region),
		config.WithCredentialsProvider(creds),
	}

	if dbCfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: dbCfg.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}
