package repository

import (
	"context"
	"time"

	"contract_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "contract_tracker_kv"

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     []byte `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoKVRepository persists key-value pairs in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// Each collection is a single item, so one PutItem replaces it as a whole.

type DynamoKVRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IKeyValueStore = (*DynamoKVRepository)(nil)

func NewDynamoKVRepository(ddb *dynamodb.Client, table string) *DynamoKVRepository {
	if table == "" {
		table = defaultKVTableName
	}
	return &DynamoKVRepository{ddb: ddb, tableName: table}
}

func (r *DynamoKVRepository) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return it.Value, true, nil
}

func (r *DynamoKVRepository) SetItem(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(toKVItem(key, value))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toKVItem(key string, value []byte) kvItem {
	if value == nil {
		value = []byte{}
	}
	return kvItem{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
}
