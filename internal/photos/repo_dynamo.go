package photos

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoItem is the DynamoDB row shape for a photo record. Timestamps are
// stored as RFC 3339 strings to keep the items readable in the console.
type dynamoItem struct {
	PhotoID         string `dynamodbav:"photoId"`
	FileName        string `dynamodbav:"fileName"`
	UploadTimestamp string `dynamodbav:"uploadTimestamp"`
	StorageKey      string `dynamodbav:"s3Key"`
	ContentType     string `dynamodbav:"contentType"`
	SizeBytes       int64  `dynamodbav:"sizeBytes"`
}

// DynamoRepo implements Repo using a DynamoDB table keyed by photoId.
type DynamoRepo struct {
	Client *dynamodb.Client
	Table  string
}

// NewDynamoRepo constructs a DynamoDB-backed repo.
func NewDynamoRepo(ctx context.Context, region, table string) (*DynamoRepo, error) {
	if table == "" {
		return nil, fmt.Errorf("dynamodb table is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &DynamoRepo{
		Client: dynamodb.NewFromConfig(cfg),
		Table:  table,
	}, nil
}

// Put writes the record as a single item.
func (r *DynamoRepo) Put(ctx context.Context, record PhotoRecord) error {
	item, err := attributevalue.MarshalMap(dynamoItem{
		PhotoID:         record.ID,
		FileName:        record.FileName,
		UploadTimestamp: record.UploadTimestamp.UTC().Format(time.RFC3339Nano),
		StorageKey:      record.StorageKey,
		ContentType:     record.ContentType,
		SizeBytes:       record.SizeBytes,
	})
	if err != nil {
		return fmt.Errorf("marshal photo item: %w", err)
	}

	_, err = r.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.Table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put item table=%s id=%s: %w", r.Table, record.ID, err)
	}
	return nil
}

// Get reads the item for the given id.
func (r *DynamoRepo) Get(ctx context.Context, id string) (PhotoRecord, error) {
	out, err := r.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.Table),
		Key: map[string]ddbtypes.AttributeValue{
			"photoId": &ddbtypes.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return PhotoRecord{}, fmt.Errorf("dynamodb get item table=%s id=%s: %w", r.Table, id, err)
	}
	if len(out.Item) == 0 {
		return PhotoRecord{}, ErrNotFound
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return PhotoRecord{}, fmt.Errorf("unmarshal photo item id=%s: %w", id, err)
	}

	uploadedAt, err := time.Parse(time.RFC3339Nano, item.UploadTimestamp)
	if err != nil {
		return PhotoRecord{}, fmt.Errorf("parse upload timestamp id=%s: %w", id, err)
	}

	return PhotoRecord{
		ID:              item.PhotoID,
		FileName:        item.FileName,
		UploadTimestamp: uploadedAt,
		StorageKey:      item.StorageKey,
		ContentType:     item.ContentType,
		SizeBytes:       item.SizeBytes,
	}, nil
}

var _ Repo = (*DynamoRepo)(nil)
