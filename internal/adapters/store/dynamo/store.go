// Package dynamo provides a DynamoDB-backed quotation store.
//
// Table requirements:
//   - partition key: id (number)
//
// The item with id 0 is reserved for the identifier counter. Its next_id
// attribute only ever grows, so deleted ids are never handed out again.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jsamuelsen/quotation-service/internal/domain"
)

const (
	counterID        int64 = 0
	counterAttribute       = "next_id"

	condExists    = "attribute_exists(#id)"
	condNotExists = "attribute_not_exists(#id)"
)

// API is the subset of the DynamoDB client used by the store.
type API interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Config contains connection settings for the DynamoDB store.
type Config struct {
	Table    string
	Region   string
	Endpoint string
	// Static credentials, mainly for DynamoDB Local. The default
	// credential chain is used when AccessKeyID is empty.
	AccessKeyID     string
	SecretAccessKey string
}

// Store persists quotation requests as DynamoDB items.
type Store struct {
	api    API
	table  string
	logger *slog.Logger
}

type item struct {
	ID           int64  `dynamodbav:"id"`
	CustomerName string `dynamodbav:"customer_name"`
	Title        string `dynamodbav:"title"`
	DueDate      string `dynamodbav:"due_date"`
	Type         string `dynamodbav:"type"`
	Status       string `dynamodbav:"status"`
}

// Open builds a DynamoDB client from cfg and returns a store using it.
func Open(ctx context.Context, cfg *Config, logger *slog.Logger) (*Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return New(client, cfg.Table, logger), nil
}

// New creates a store over an existing client.
func New(api API, table string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{api: api, table: table, logger: logger}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "store-dynamodb"
}

// Check implements ports.HealthChecker by describing the table.
func (s *Store) Check(ctx context.Context) error {
	_, err := s.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return fmt.Errorf("describing table %s: %w", s.table, err)
	}

	return nil
}

// List scans the table and returns records ordered by id.
func (s *Store) List(ctx context.Context) ([]domain.QuotationRequest, error) {
	p := dynamodb.NewScanPaginator(s.api, &dynamodb.ScanInput{
		TableName:      aws.String(s.table),
		ConsistentRead: aws.Bool(true),
	})

	out := make([]domain.QuotationRequest, 0)

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scanning quotations: %w", err)
		}

		var items []item
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("decoding quotations: %w", err)
		}

		for i := range items {
			if items[i].ID == counterID {
				continue
			}

			out = append(out, items[i].toDomain())
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// GetByID reads one item with a consistent read.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.QuotationRequest, error) {
	if id <= counterID {
		return nil, domain.NewQuotationNotFound(id)
	}

	res, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("getting quotation %d: %w", id, err)
	}

	if len(res.Item) == 0 {
		return nil, domain.NewQuotationNotFound(id)
	}

	var it item
	if err := attributevalue.UnmarshalMap(res.Item, &it); err != nil {
		return nil, fmt.Errorf("decoding quotation %d: %w", id, err)
	}

	rec := it.toDomain()

	return &rec, nil
}

// Insert allocates the next id from the counter item and writes the record.
func (s *Store) Insert(ctx context.Context, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return nil, err
	}

	rec := domain.QuotationRequest{ID: id, QuotationFields: fields}
	if err := s.put(ctx, rec, condNotExists); err != nil {
		return nil, fmt.Errorf("inserting quotation %d: %w", id, err)
	}

	s.logger.DebugContext(ctx, "quotation item written", slog.Int64("id", id))

	return &rec, nil
}

// Update overwrites an existing item. Missing items are not created.
func (s *Store) Update(ctx context.Context, id int64, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	if id <= counterID {
		return nil, domain.NewQuotationNotFound(id)
	}

	rec := domain.QuotationRequest{ID: id, QuotationFields: fields}

	err := s.put(ctx, rec, condExists)
	if isConditionFailed(err) {
		return nil, domain.NewQuotationNotFound(id)
	}

	if err != nil {
		return nil, fmt.Errorf("updating quotation %d: %w", id, err)
	}

	return &rec, nil
}

// Delete removes an existing item.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if id <= counterID {
		return domain.NewQuotationNotFound(id)
	}

	_, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(s.table),
		Key:                      key(id),
		ConditionExpression:      aws.String(condExists),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if isConditionFailed(err) {
		return domain.NewQuotationNotFound(id)
	}

	if err != nil {
		return fmt.Errorf("deleting quotation %d: %w", id, err)
	}

	return nil
}

// nextID atomically increments the counter item and returns the new value.
func (s *Store) nextID(ctx context.Context) (int64, error) {
	res, err := s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       key(counterID),
		UpdateExpression:          aws.String("ADD #next :one"),
		ExpressionAttributeNames:  map[string]string{"#next": counterAttribute},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("allocating quotation id: %w", err)
	}

	n, ok := res.Attributes[counterAttribute].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("allocating quotation id: counter attribute %q missing", counterAttribute)
	}

	id, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("allocating quotation id: %w", err)
	}

	return id, nil
}

func (s *Store) put(ctx context.Context, rec domain.QuotationRequest, condition string) error {
	av, err := attributevalue.MarshalMap(fromDomain(rec))
	if err != nil {
		return err
	}

	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(s.table),
		Item:                     av,
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})

	return err
}

func key(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func fromDomain(rec domain.QuotationRequest) item {
	return item{
		ID:           rec.ID,
		CustomerName: rec.CustomerName,
		Title:        rec.Title,
		DueDate:      rec.DueDate,
		Type:         string(rec.Type),
		Status:       string(rec.Status),
	}
}

func (it *item) toDomain() domain.QuotationRequest {
	return domain.QuotationRequest{
		ID: it.ID,
		QuotationFields: domain.QuotationFields{
			CustomerName: it.CustomerName,
			Title:        it.Title,
			DueDate:      it.DueDate,
			Type:         domain.QuotationType(it.Type),
			Status:       domain.QuotationStatus(it.Status),
		},
	}
}
