package dynamo

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotation-service/internal/domain"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

var _ ports.QuotationStore = (*Store)(nil)
var _ ports.HealthChecker = (*Store)(nil)

// fakeAPI is an in-memory table that understands the requests the store sends.
type fakeAPI struct {
	mu       sync.Mutex
	items    map[int64]map[string]types.AttributeValue
	pageSize int
	scans    int
	failWith error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		items:    make(map[int64]map[string]types.AttributeValue),
		pageSize: 2,
	}
}

func idOf(t map[string]types.AttributeValue) int64 {
	n := t["id"].(*types.AttributeValueMemberN)
	id, _ := strconv.ParseInt(n.Value, 10, 64)
	return id
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeAPI) check(condition *string, id int64) error {
	_, exists := f.items[id]

	switch aws.ToString(condition) {
	case condExists:
		if !exists {
			return conditionFailed()
		}
	case condNotExists:
		if exists {
			return conditionFailed()
		}
	}

	return nil
}

func (f *fakeAPI) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	return &dynamodb.GetItemOutput{Item: f.items[idOf(in.Key)]}, nil
}

func (f *fakeAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	id := idOf(in.Item)
	if err := f.check(in.ConditionExpression, id); err != nil {
		return nil, err
	}

	f.items[id] = in.Item

	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeAPI) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	id := idOf(in.Key)
	counter, ok := f.items[id]
	if !ok {
		counter = map[string]types.AttributeValue{"id": in.Key["id"]}
		f.items[id] = counter
	}

	var current int64
	if n, ok := counter[counterAttribute].(*types.AttributeValueMemberN); ok {
		current, _ = strconv.ParseInt(n.Value, 10, 64)
	}

	next := &types.AttributeValueMemberN{Value: strconv.FormatInt(current+1, 10)}
	counter[counterAttribute] = next

	return &dynamodb.UpdateItemOutput{
		Attributes: map[string]types.AttributeValue{counterAttribute: next},
	}, nil
}

func (f *fakeAPI) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	id := idOf(in.Key)
	if err := f.check(in.ConditionExpression, id); err != nil {
		return nil, err
	}

	delete(f.items, id)

	return &dynamodb.DeleteItemOutput{}, nil
}

// Scan returns items in descending id order, pageSize at a time.
func (f *fakeAPI) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.scans++

	if f.failWith != nil {
		return nil, f.failWith
	}

	ids := make([]int64, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	start := 0
	if in.ExclusiveStartKey != nil {
		last := idOf(in.ExclusiveStartKey)
		for i, id := range ids {
			if id == last {
				start = i + 1
				break
			}
		}
	}

	end := min(start+f.pageSize, len(ids))

	out := &dynamodb.ScanOutput{}
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, f.items[id])
	}

	if end < len(ids) {
		out.LastEvaluatedKey = key(ids[end-1])
	}

	return out, nil
}

func (f *fakeAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableName: in.TableName},
	}, nil
}

func sampleFields(customer string) domain.QuotationFields {
	return domain.QuotationFields{
		CustomerName: customer,
		Title:        "Quotation for Project C",
		DueDate:      "2024-07-25",
		Type:         domain.QuotationTypeCustom,
		Status:       domain.QuotationStatusInProgress,
	}
}

func TestStore_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	s := New(newFakeAPI(), "quotation_requests", nil)

	created, err := s.Insert(ctx, sampleFields("Alice Johnson"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestStore_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	s := New(newFakeAPI(), "quotation_requests", nil)

	_, err := s.Insert(ctx, sampleFields("A"))
	require.NoError(t, err)
	second, err := s.Insert(ctx, sampleFields("B"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, second.ID))

	third, err := s.Insert(ctx, sampleFields("C"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestStore_List_SortsAndSkipsCounter(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	s := New(api, "quotation_requests", nil)

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := s.Insert(ctx, sampleFields(name))
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)

	for i, rec := range list {
		assert.Equal(t, int64(i+1), rec.ID)
	}

	assert.Equal(t, "A", list[0].CustomerName)
	assert.Greater(t, api.scans, 1, "expected paginated scan")
}

func TestStore_List_Empty(t *testing.T) {
	s := New(newFakeAPI(), "quotation_requests", nil)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s := New(newFakeAPI(), "quotation_requests", nil)

	created, err := s.Insert(ctx, sampleFields("A"))
	require.NoError(t, err)

	t.Run("existing", func(t *testing.T) {
		changed := sampleFields("A")
		changed.Status = domain.QuotationStatusCompleted

		updated, err := s.Update(ctx, created.ID, changed)
		require.NoError(t, err)
		assert.Equal(t, domain.QuotationStatusCompleted, updated.Status)

		got, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, changed, got.QuotationFields)
	})

	t.Run("missing id is not created", func(t *testing.T) {
		_, err := s.Update(ctx, 77, sampleFields("X"))
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))

		_, err = s.GetByID(ctx, 77)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("counter id is not addressable", func(t *testing.T) {
		_, err := s.Update(ctx, 0, sampleFields("X"))
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := New(newFakeAPI(), "quotation_requests", nil)

	created, err := s.Insert(ctx, sampleFields("A"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))

	err = s.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	_, err = s.GetByID(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_BackendErrors(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	s := New(api, "quotation_requests", nil)
	api.failWith = errors.New("throttled")

	_, err := s.List(ctx)
	assert.ErrorContains(t, err, "throttled")

	_, err = s.GetByID(ctx, 1)
	assert.ErrorContains(t, err, "throttled")
	assert.False(t, domain.IsNotFound(err))

	_, err = s.Insert(ctx, sampleFields("A"))
	assert.ErrorContains(t, err, "allocating quotation id")

	err = s.Delete(ctx, 1)
	assert.ErrorContains(t, err, "throttled")
	assert.False(t, domain.IsNotFound(err))
}

func TestStore_Check(t *testing.T) {
	api := newFakeAPI()
	s := New(api, "quotation_requests", nil)

	assert.Equal(t, "store-dynamodb", s.Name())
	require.NoError(t, s.Check(context.Background()))

	api.failWith = errors.New("no such table")
	err := s.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quotation_requests")
}
