package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EnsureTable creates the catalog table and its owner index when they are missing
// and waits up to maxWait for the table to become active.
func (r *ImageCatalogDynamoDB) EnsureTable(ctx context.Context, maxWait time.Duration) (bool, error) {
	_, err := r.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	})
	if err == nil {
		return false, nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return false, fmt.Errorf("ImageCatalogDynamoDB - EnsureTable - r.Client.DescribeTable: %w", err)
	}

	_, err = r.Client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(imageIDAttr), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(userIDAttr), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(createdAtAttr), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(imageIDAttr), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(r.ownerIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String(userIDAttr), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String(createdAtAttr), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return false, fmt.Errorf("ImageCatalogDynamoDB - EnsureTable - r.Client.CreateTable: %w", err)
	}

	waiter := dynamodb.NewTableExistsWaiter(r.Client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.table)}, maxWait)
	if err != nil {
		return true, fmt.Errorf("ImageCatalogDynamoDB - EnsureTable - waiter.Wait: %w", err)
	}

	return true, nil
}
