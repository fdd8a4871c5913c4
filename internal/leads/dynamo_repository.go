package leads

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/northstack/lead-intake/pkg/logging"
)

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoRepository persists leads to a DynamoDB table. The write is an
// unconditional put: ids are random UUIDs and collision is treated as
// negligible, so no attribute_not_exists guard is applied.
type DynamoRepository struct {
	client    dynamoAPI
	tableName string
	logger    *logging.Logger
}

var _ Repository = (*DynamoRepository)(nil)

// NewDynamoRepository builds a repository backed by the provided DynamoDB client.
func NewDynamoRepository(client dynamoAPI, tableName string, logger *logging.Logger) *DynamoRepository {
	if client == nil {
		panic("leads: dynamodb client cannot be nil")
	}
	if tableName == "" {
		panic("leads: table name cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DynamoRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Insert writes the full lead record as a single item.
func (r *DynamoRepository) Insert(ctx context.Context, lead *Lead) error {
	if lead == nil {
		return errors.New("leads: lead cannot be nil")
	}

	item, err := attributevalue.MarshalMap(lead)
	if err != nil {
		return fmt.Errorf("leads: failed to marshal lead: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("leads: failed to persist lead: %w", err)
	}

	r.logger.Info("lead persisted", "id", lead.ID, "table", r.tableName)
	return nil
}
