package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog-admin/domain/catalog"
	pkgerrors "catalog-admin/pkg/errors"
	"catalog-admin/pkg/utils"
)

type mockDynamo struct {
	mock.Mock
}

func (m *mockDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.GetItemOutput)
	return out, args.Error(1)
}

func (m *mockDynamo) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.PutItemOutput)
	return out, args.Error(1)
}

func (m *mockDynamo) UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.UpdateItemOutput)
	return out, args.Error(1)
}

func (m *mockDynamo) DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.DeleteItemOutput)
	return out, args.Error(1)
}

func (m *mockDynamo) Scan(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.ScanOutput)
	return out, args.Error(1)
}

func (m *mockDynamo) Query(ctx context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.QueryOutput)
	return out, args.Error(1)
}

func (m *mockDynamo) DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.DescribeTableOutput)
	return out, args.Error(1)
}

var testTables = Tables{Users: "users", Products: "products", Providers: "providers", Logos: "logos"}

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := utils.Now
	utils.Now = func() time.Time { return at }
	t.Cleanup(func() { utils.Now = prev })
}

func mustItem(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func hasStringValue(values map[string]types.AttributeValue, want string) bool {
	for _, v := range values {
		if s, ok := v.(*types.AttributeValueMemberS); ok && s.Value == want {
			return true
		}
	}
	return false
}

func TestCreateGeneratesIDAndEqualTimestamps(t *testing.T) {
	freezeClock(t, time.Date(2024, 5, 1, 12, 0, 0, 123e6, time.UTC))
	client := new(mockDynamo)
	client.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		return *in.TableName == "products" && in.ConditionExpression != nil
	})).Return(&dynamodb.PutItemOutput{}, nil)

	repo := NewProductRepository(client, testTables, zap.NewNop(), nil)
	created, err := repo.Create(context.Background(), &catalog.Product{Name: "Widget"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-05-01T12:00:00.123Z", created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	client.AssertExpectations(t)

	other, err := repo.Create(context.Background(), &catalog.Product{Name: "Widget"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestCreateDuplicateIDIsConflict(t *testing.T) {
	client := new(mockDynamo)
	client.On("PutItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{Message: strPtr("exists")})

	repo := NewProviderRepository(client, testTables, zap.NewNop(), nil)
	_, err := repo.Create(context.Background(), &catalog.Provider{ID: "p-1", Name: "Acme"})

	assert.True(t, pkgerrors.IsConflict(err))
}

func TestFindByIDNotFound(t *testing.T) {
	client := new(mockDynamo)
	client.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

	repo := NewProductRepository(client, testTables, zap.NewNop(), nil)
	_, err := repo.FindByID(context.Background(), "missing")

	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestUpdateNeverMovesUpdatedAtBackwards(t *testing.T) {
	freezeClock(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	future := "2030-01-01T00:00:00.000Z"

	client := new(mockDynamo)
	client.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
		return in.ProjectionExpression != nil
	})).Return(&dynamodb.GetItemOutput{Item: mustItem(t, stamps{CreatedAt: "2029-01-01T00:00:00.000Z", UpdatedAt: future})}, nil)

	stored := catalog.Product{ID: "p-1", Name: "Renamed", CreatedAt: "2029-01-01T00:00:00.000Z", UpdatedAt: future}
	client.On("UpdateItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
		return hasStringValue(in.ExpressionAttributeValues, future) &&
			hasStringValue(in.ExpressionAttributeValues, "Renamed") &&
			in.ReturnValues == types.ReturnValueAllNew
	})).Return(&dynamodb.UpdateItemOutput{Attributes: mustItem(t, stored)}, nil)

	name := "Renamed"
	repo := NewProductRepository(client, testTables, zap.NewNop(), nil)
	got, err := repo.Update(context.Background(), "p-1", catalog.ProductPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.GreaterOrEqual(t, got.UpdatedAt, got.CreatedAt)
	client.AssertExpectations(t)
}

func TestUpdateMissingItemIsNotFound(t *testing.T) {
	client := new(mockDynamo)
	client.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

	name := "x"
	repo := NewProductRepository(client, testTables, zap.NewNop(), nil)
	_, err := repo.Update(context.Background(), "nope", catalog.ProductPatch{Name: &name})

	assert.True(t, pkgerrors.IsNotFound(err))
	client.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
}

func TestUpdateRaceIsConflict(t *testing.T) {
	client := new(mockDynamo)
	client.On("GetItem", mock.Anything, mock.Anything).
		Return(&dynamodb.GetItemOutput{Item: mustItem(t, stamps{CreatedAt: "2024-01-01T00:00:00.000Z", UpdatedAt: "2024-01-01T00:00:00.000Z"})}, nil)
	client.On("UpdateItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{Message: strPtr("changed")})

	status := "active"
	repo := NewProviderRepository(client, testTables, zap.NewNop(), nil)
	_, err := repo.Update(context.Background(), "p-1", catalog.ProviderPatch{Status: &status})

	assert.True(t, pkgerrors.IsConflict(err))
}

func TestDeleteMissingItemIsNotFound(t *testing.T) {
	client := new(mockDynamo)
	client.On("DeleteItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{Message: strPtr("missing")})

	repo := NewLogoRepository(client, testTables, zap.NewNop(), nil)
	err := repo.Delete(context.Background(), "l-1")

	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestGetStatsTotalEqualsBuckets(t *testing.T) {
	client := new(mockDynamo)
	client.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.ProjectionExpression != nil
	})).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
		mustItem(t, map[string]string{"status": "active"}),
		mustItem(t, map[string]string{"status": "draft"}),
		mustItem(t, map[string]string{"status": "draft"}),
		mustItem(t, map[string]string{"status": "legacy"}),
		mustItem(t, map[string]string{}),
	}}, nil)

	repo := NewProductRepository(client, testTables, zap.NewNop(), nil)
	stats, err := repo.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, stats.Total, stats.Sum())
	assert.Equal(t, 2, stats.ByStatus["draft"])
	assert.Equal(t, 2, stats.ByStatus[catalog.OtherBucket])
}

func TestFindAllAppliesLimitAndKeepsTotal(t *testing.T) {
	client := new(mockDynamo)
	client.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.FilterExpression != nil
	})).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
		mustItem(t, catalog.Product{ID: "a", Name: "A", Status: "active", CreatedAt: "2024-01-01T00:00:00.000Z"}),
		mustItem(t, catalog.Product{ID: "c", Name: "C", Status: "active", CreatedAt: "2024-03-01T00:00:00.000Z"}),
		mustItem(t, catalog.Product{ID: "b", Name: "B", Status: "active", CreatedAt: "2024-02-01T00:00:00.000Z"}),
	}}, nil)

	repo := NewProductRepository(client, testTables, zap.NewNop(), nil)
	res, err := repo.FindAll(context.Background(), catalog.ProductFilter{Status: "active", Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalCount)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "c", res.Items[0].ID)
	assert.Equal(t, "b", res.Items[1].ID)
}

func TestFindAllEmptyIsNotNil(t *testing.T) {
	client := new(mockDynamo)
	client.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{}, nil)

	repo := NewUserRepository(client, testTables, zap.NewNop(), nil)
	res, err := repo.FindAll(context.Background(), catalog.UserFilter{})

	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Zero(t, res.TotalCount)
}

func TestFindByEmailWithoutIndexScans(t *testing.T) {
	client := new(mockDynamo)
	client.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return hasStringValue(in.ExpressionAttributeValues, "ana@example.com")
	})).Return(&dynamodb.ScanOutput{}, nil)

	repo := NewUserRepository(client, testTables, zap.NewNop(), nil)
	u, found, err := repo.FindByEmail(context.Background(), "  Ana@Example.com ")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, u)
	client.AssertExpectations(t)
}

func TestFindByEmailWithIndexQueriesAndReloads(t *testing.T) {
	tables := testTables
	tables.UsersEmail = "email-index"
	full := catalog.User{ID: "u-1", Email: "ana@example.com", Password: "hash", Role: catalog.RoleAdmin, Status: catalog.UserActive}

	client := new(mockDynamo)
	client.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return *in.IndexName == "email-index"
	})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
		mustItem(t, map[string]string{"id": "u-1", "email": "ana@example.com"}),
	}}, nil)
	client.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: mustItem(t, full)}, nil)

	repo := NewUserRepository(client, tables, zap.NewNop(), nil)
	u, found, err := repo.FindByEmail(context.Background(), "ana@example.com")

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "hash", u.Password)
	client.AssertNotCalled(t, "Scan", mock.Anything, mock.Anything)
}

func TestGetUserStatsCountsBothBreakdowns(t *testing.T) {
	client := new(mockDynamo)
	client.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
		mustItem(t, map[string]string{"status": "active", "role": "admin"}),
		mustItem(t, map[string]string{"status": "pending", "role": "cliente"}),
	}}, nil)

	repo := NewUserRepository(client, testTables, zap.NewNop(), nil)
	stats, err := repo.GetUserStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByRole["admin"])
	assert.Equal(t, 1, stats.ByStatus["pending"])
}

func TestSetPrimaryClearsOtherLogosOfClient(t *testing.T) {
	target := catalog.Logo{ID: "l-2", ClientID: "c-1", Status: catalog.LogoActive, CreatedAt: "2024-01-01T00:00:00.000Z", UpdatedAt: "2024-01-01T00:00:00.000Z"}
	previous := catalog.Logo{ID: "l-1", ClientID: "c-1", IsPrimary: true, Status: catalog.LogoActive, CreatedAt: "2024-01-01T00:00:00.000Z", UpdatedAt: "2024-01-01T00:00:00.000Z"}

	client := new(mockDynamo)
	client.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: mustItem(t, target)}, nil)
	client.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
		mustItem(t, previous),
	}}, nil)

	promoted := target
	promoted.IsPrimary = true
	client.On("UpdateItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
		return in.Key["id"].(*types.AttributeValueMemberS).Value == "l-1"
	})).Return(&dynamodb.UpdateItemOutput{}, nil).Once()
	client.On("UpdateItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
		return in.Key["id"].(*types.AttributeValueMemberS).Value == "l-2"
	})).Return(&dynamodb.UpdateItemOutput{Attributes: mustItem(t, promoted)}, nil).Once()

	repo := NewLogoRepository(client, testTables, zap.NewNop(), nil)
	got, err := repo.SetPrimary(context.Background(), "l-2")

	require.NoError(t, err)
	assert.True(t, got.IsPrimary)
	client.AssertNumberOfCalls(t, "UpdateItem", 2)
}

func TestLogoFindAllUsesClientIndex(t *testing.T) {
	tables := testTables
	tables.LogosClient = "client-index"

	client := new(mockDynamo)
	client.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return *in.IndexName == "client-index" && hasStringValue(in.ExpressionAttributeValues, "c-9")
	})).Return(&dynamodb.QueryOutput{}, nil)

	repo := NewLogoRepository(client, tables, zap.NewNop(), nil)
	_, err := repo.FindAll(context.Background(), catalog.LogoFilter{ClientID: "c-9"})

	require.NoError(t, err)
	client.AssertNotCalled(t, "Scan", mock.Anything, mock.Anything)
}

func TestTestConnection(t *testing.T) {
	client := new(mockDynamo)
	client.On("DescribeTable", mock.Anything, mock.Anything).Return(&dynamodb.DescribeTableOutput{}, nil).Once()
	client.On("DescribeTable", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: refused")).Once()

	repo := NewUserRepository(client, testTables, zap.NewNop(), nil)
	assert.True(t, repo.TestConnection(context.Background()))
	assert.False(t, repo.TestConnection(context.Background()))
}

func TestBreakerOpensAndFailsFast(t *testing.T) {
	client := new(mockDynamo)
	client.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	var transitions []string
	cfg := DefaultBreakerConfig()
	cfg.MinRequests = 2
	cfg.FailureThreshold = 0.5
	breaker := NewBreakerClient(client, cfg, zap.NewNop(), func(_, to string) { transitions = append(transitions, to) })

	repo := NewProductRepository(breaker, testTables, zap.NewNop(), nil)
	for i := 0; i < 2; i++ {
		_, err := repo.FindByID(context.Background(), "p-1")
		require.Error(t, err)
	}

	_, err := repo.FindByID(context.Background(), "p-1")
	assert.True(t, pkgerrors.IsUnavailable(err))
	assert.Equal(t, "open", breaker.State("products"))
	assert.Equal(t, []string{"open"}, transitions)
	client.AssertNumberOfCalls(t, "GetItem", 2)
}

func TestBreakerIgnoresConditionFailures(t *testing.T) {
	client := new(mockDynamo)
	client.On("DeleteItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{Message: strPtr("missing")})

	cfg := DefaultBreakerConfig()
	cfg.MinRequests = 1
	cfg.FailureThreshold = 0.1
	breaker := NewBreakerClient(client, cfg, zap.NewNop(), nil)

	repo := NewProductRepository(breaker, testTables, zap.NewNop(), nil)
	for i := 0; i < 3; i++ {
		assert.True(t, pkgerrors.IsNotFound(repo.Delete(context.Background(), "p-1")))
	}
	assert.Equal(t, "closed", breaker.State("products"))
}

func TestBreakerIgnoresMissingTableAndRejectedRequests(t *testing.T) {
	client := new(mockDynamo)
	client.On("DescribeTable", mock.Anything, mock.Anything).
		Return(nil, &types.ResourceNotFoundException{Message: strPtr("table not found")})
	client.On("Scan", mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "ValidationException", Message: "bad filter"})

	breaker := NewBreakerClient(client, DefaultBreakerConfig(), zap.NewNop(), nil)
	logos := NewLogoRepository(breaker, testTables, zap.NewNop(), nil)
	for i := 0; i < 12; i++ {
		assert.False(t, logos.TestConnection(context.Background()))
		_, err := logos.FindAll(context.Background(), catalog.LogoFilter{})
		require.Error(t, err)
	}

	assert.Equal(t, "closed", breaker.State("logos"))
	client.AssertNumberOfCalls(t, "DescribeTable", 12)
}

func TestBreakerFailuresStayWithinOneTable(t *testing.T) {
	client := new(mockDynamo)
	onTable := func(name string) interface{} {
		return mock.MatchedBy(func(in *dynamodb.GetItemInput) bool { return *in.TableName == name })
	}
	client.On("GetItem", mock.Anything, onTable("logos")).Return(nil, errors.New("connection reset"))
	client.On("GetItem", mock.Anything, onTable("products")).Return(&dynamodb.GetItemOutput{}, nil)

	cfg := DefaultBreakerConfig()
	cfg.MinRequests = 2
	cfg.FailureThreshold = 0.5
	breaker := NewBreakerClient(client, cfg, zap.NewNop(), nil)

	logos := NewLogoRepository(breaker, testTables, zap.NewNop(), nil)
	for i := 0; i < 3; i++ {
		_, _ = logos.FindByID(context.Background(), "l-1")
	}
	require.Equal(t, "open", breaker.State("logos"))

	products := NewProductRepository(breaker, testTables, zap.NewNop(), nil)
	_, err := products.FindByID(context.Background(), "p-1")
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Equal(t, "closed", breaker.State("products"))
}

func strPtr(s string) *string { return &s }
