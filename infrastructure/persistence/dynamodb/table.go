package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"catalog-admin/domain/catalog"
	pkgerrors "catalog-admin/pkg/errors"
	"catalog-admin/pkg/observability"
	"catalog-admin/pkg/utils"
)

type item = map[string]types.AttributeValue

// table holds the per-table plumbing shared by every repository: item codec,
// condition handling, instrumentation and error classification.
type table struct {
	client  DynamoDBAPI
	name    string
	entity  string
	logger  *zap.Logger
	metrics *observability.Metrics
}

func newTable(client DynamoDBAPI, name, entity string, logger *zap.Logger, metrics *observability.Metrics) *table {
	return &table{
		client:  client,
		name:    name,
		entity:  entity,
		logger:  logger.With(zap.String("table", name)),
		metrics: metrics,
	}
}

// observe runs one store call inside a span, records metrics and classifies the error.
func (t *table) observe(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, span := observability.StartSpan(ctx, "dynamodb."+op,
		attribute.String("db.system", "dynamodb"),
		attribute.String("db.collection.name", t.name),
	)
	start := time.Now()
	err := fn(ctx)
	t.metrics.ObserveStore(op, t.name, err, time.Since(start))
	observability.EndSpan(span, err)

	if err != nil && !pkgerrors.IsNotFound(err) && !pkgerrors.IsConditionFailed(err) {
		t.logger.Error("Store operation failed",
			zap.String("operation", op),
			zap.Error(err),
		)
	}
	return pkgerrors.FromStoreError(op, err)
}

func (t *table) key(id string) item {
	return item{"id": &types.AttributeValueMemberS{Value: id}}
}

// get loads the item with the given id into out. found is false when no item exists.
func (t *table) get(ctx context.Context, id string, out interface{}) (bool, error) {
	var found bool
	err := t.observe(ctx, "GetItem", func(ctx context.Context) error {
		res, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(t.name),
			Key:       t.key(id),
		})
		if err != nil {
			return err
		}
		if len(res.Item) == 0 {
			return nil
		}
		found = true
		if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}
		return nil
	})
	return found, err
}

// create writes a new item, failing with a conflict if the id is already taken.
func (t *table) create(ctx context.Context, v interface{}) error {
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal item").WithCause(err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("id"))).
		Build()
	if err != nil {
		return pkgerrors.NewInternalError("failed to build expression").WithCause(err)
	}

	err = t.observe(ctx, "PutItem", func(ctx context.Context) error {
		_, err := t.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                 aws.String(t.name),
			Item:                      av,
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		})
		return err
	})
	if pkgerrors.IsConditionFailed(err) {
		return pkgerrors.NewConflictError(t.entity + " already exists").WithCode("DUPLICATE_ID").WithCause(err)
	}
	return err
}

type stamps struct {
	CreatedAt string `dynamodbav:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

// update applies fields to an existing item and stamps updatedAt. The new stamp
// never precedes the stored createdAt/updatedAt, and the write is conditioned on
// the stored updatedAt so concurrent writers surface as a conflict.
func (t *table) update(ctx context.Context, id string, fields map[string]interface{}, out interface{}) error {
	var prev stamps
	found, err := t.getProjected(ctx, id, &prev, "createdAt", "updatedAt")
	if err != nil {
		return err
	}
	if !found {
		return pkgerrors.NewNotFoundError(t.entity)
	}

	upd := expression.Set(expression.Name("updatedAt"), expression.Value(utils.LaterISO(prev.CreatedAt, prev.UpdatedAt)))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "id" || k == "createdAt" || k == "updatedAt" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		upd = upd.Set(expression.Name(k), expression.Value(fields[k]))
	}

	cond := expression.AttributeExists(expression.Name("id"))
	if prev.UpdatedAt == "" {
		cond = cond.And(expression.AttributeNotExists(expression.Name("updatedAt")))
	} else {
		cond = cond.And(expression.Name("updatedAt").Equal(expression.Value(prev.UpdatedAt)))
	}

	expr, err := expression.NewBuilder().WithUpdate(upd).WithCondition(cond).Build()
	if err != nil {
		return pkgerrors.NewInternalError("failed to build expression").WithCause(err)
	}

	err = t.observe(ctx, "UpdateItem", func(ctx context.Context) error {
		res, err := t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(t.name),
			Key:                       t.key(id),
			UpdateExpression:          expr.Update(),
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			return err
		}
		if out == nil {
			return nil
		}
		if err := attributevalue.UnmarshalMap(res.Attributes, out); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}
		return nil
	})
	if pkgerrors.IsConditionFailed(err) {
		return pkgerrors.NewConflictError(t.entity + " was modified concurrently").WithCode("CONCURRENT_UPDATE").WithCause(err)
	}
	return err
}

func (t *table) getProjected(ctx context.Context, id string, out interface{}, attrs ...string) (bool, error) {
	proj := expression.NamesList(expression.Name(attrs[0]))
	for _, a := range attrs[1:] {
		proj = proj.AddNames(expression.Name(a))
	}
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return false, pkgerrors.NewInternalError("failed to build expression").WithCause(err)
	}

	var found bool
	err = t.observe(ctx, "GetItem", func(ctx context.Context) error {
		res, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName:                aws.String(t.name),
			Key:                      t.key(id),
			ProjectionExpression:     expr.Projection(),
			ExpressionAttributeNames: expr.Names(),
		})
		if err != nil {
			return err
		}
		if len(res.Item) == 0 {
			return nil
		}
		found = true
		return attributevalue.UnmarshalMap(res.Item, out)
	})
	return found, err
}

// delete removes the item, returning NotFound if it does not exist.
func (t *table) delete(ctx context.Context, id string) error {
	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
	if err != nil {
		return pkgerrors.NewInternalError("failed to build expression").WithCause(err)
	}

	err = t.observe(ctx, "DeleteItem", func(ctx context.Context) error {
		_, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName:                aws.String(t.name),
			Key:                      t.key(id),
			ConditionExpression:      expr.Condition(),
			ExpressionAttributeNames: expr.Names(),
		})
		return err
	})
	if pkgerrors.IsConditionFailed(err) {
		return pkgerrors.NewNotFoundError(t.entity)
	}
	return err
}

// touch sets fields on an existing item without stamping updatedAt.
func (t *table) touch(ctx context.Context, id string, fields map[string]interface{}) error {
	var upd expression.UpdateBuilder
	for k, v := range fields {
		upd = upd.Set(expression.Name(k), expression.Value(v))
	}
	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
	if err != nil {
		return pkgerrors.NewInternalError("failed to build expression").WithCause(err)
	}

	err = t.observe(ctx, "UpdateItem", func(ctx context.Context) error {
		_, err := t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(t.name),
			Key:                       t.key(id),
			UpdateExpression:          expr.Update(),
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		})
		return err
	})
	if pkgerrors.IsConditionFailed(err) {
		return pkgerrors.NewNotFoundError(t.entity)
	}
	return err
}

// scan walks every page of the table, calling visit for each item matching filter.
func (t *table) scan(ctx context.Context, filter *expression.ConditionBuilder, projection *expression.ProjectionBuilder, visit func(item) error) error {
	input := &dynamodb.ScanInput{TableName: aws.String(t.name)}
	if filter != nil || projection != nil {
		b := expression.NewBuilder()
		if filter != nil {
			b = b.WithFilter(*filter)
		}
		if projection != nil {
			b = b.WithProjection(*projection)
		}
		expr, err := b.Build()
		if err != nil {
			return pkgerrors.NewInternalError("failed to build expression").WithCause(err)
		}
		input.FilterExpression = expr.Filter()
		input.ProjectionExpression = expr.Projection()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	return t.observe(ctx, "Scan", func(ctx context.Context) error {
		p := dynamodb.NewScanPaginator(t.client, input)
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return err
			}
			for _, it := range page.Items {
				if err := visit(it); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// query walks every page of an index query.
func (t *table) query(ctx context.Context, index string, key expression.KeyConditionBuilder, filter *expression.ConditionBuilder, visit func(item) error) error {
	b := expression.NewBuilder().WithKeyCondition(key)
	if filter != nil {
		b = b.WithFilter(*filter)
	}
	expr, err := b.Build()
	if err != nil {
		return pkgerrors.NewInternalError("failed to build expression").WithCause(err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(t.name),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	return t.observe(ctx, "Query", func(ctx context.Context) error {
		p := dynamodb.NewQueryPaginator(t.client, input)
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return err
			}
			for _, it := range page.Items {
				if err := visit(it); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// countByStatus scans only the status attribute and buckets it.
func (t *table) countByStatus(ctx context.Context, statuses []string) (catalog.StatusCounts, error) {
	counts := catalog.NewStatusCounts(statuses)
	proj := expression.NamesList(expression.Name("status"))

	err := t.scan(ctx, nil, &proj, func(it item) error {
		var row struct {
			Status string `dynamodbav:"status"`
		}
		if err := attributevalue.UnmarshalMap(it, &row); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}
		counts.Add(row.Status)
		return nil
	})
	if err != nil {
		return catalog.StatusCounts{}, err
	}
	return counts, nil
}

// scanTags reads only the tags attribute of every item.
func scanTags(ctx context.Context, t *table) ([][]string, error) {
	var lists [][]string
	proj := expression.NamesList(expression.Name("tags"))
	err := t.scan(ctx, nil, &proj, func(it item) error {
		var row struct {
			Tags []string `dynamodbav:"tags"`
		}
		if err := attributevalue.UnmarshalMap(it, &row); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}
		if len(row.Tags) > 0 {
			lists = append(lists, row.Tags)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// describe reports whether the table answers a DescribeTable call.
func (t *table) describe(ctx context.Context) bool {
	err := t.observe(ctx, "DescribeTable", func(ctx context.Context) error {
		_, err := t.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(t.name)})
		return err
	})
	return err == nil
}

// decodeInto appends every visited item to out.
func decodeInto[T any](out *[]T) func(item) error {
	return func(it item) error {
		var v T
		if err := attributevalue.UnmarshalMap(it, &v); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}
		*out = append(*out, v)
		return nil
	}
}

// newestFirst orders items by createdAt descending and keeps at most limit of
// them. TotalCount is the number of items before the cut.
func newestFirst[T any](items []T, createdAt func(T) string, limit int) catalog.ListResult[T] {
	if items == nil {
		items = []T{}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]) > createdAt(items[j])
	})
	res := catalog.ListResult[T]{Items: items, TotalCount: len(items)}
	if limit > 0 && len(items) > limit {
		res.Items = items[:limit]
	}
	return res
}

// and joins optional conditions. It returns nil when there are none.
func and(conds []expression.ConditionBuilder) *expression.ConditionBuilder {
	switch len(conds) {
	case 0:
		return nil
	case 1:
		return &conds[0]
	}
	c := expression.And(conds[0], conds[1], conds[2:]...)
	return &c
}

func newID() string {
	return uuid.NewString()
}
