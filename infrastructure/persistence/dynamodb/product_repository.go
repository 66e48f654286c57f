package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"go.uber.org/zap"

	"catalog-admin/domain/catalog"
	pkgerrors "catalog-admin/pkg/errors"
	"catalog-admin/pkg/observability"
	"catalog-admin/pkg/utils"
)

// ProductRepository stores products, one item per product keyed by id.
type ProductRepository struct {
	t *table
}

// NewProductRepository creates a new product repository
func NewProductRepository(client DynamoDBAPI, tables Tables, logger *zap.Logger, metrics *observability.Metrics) *ProductRepository {
	return &ProductRepository{t: newTable(client, tables.Products, "product", logger, metrics)}
}

// FindAll scans the table with the filter translated into a filter expression.
func (r *ProductRepository) FindAll(ctx context.Context, f catalog.ProductFilter) (catalog.ListResult[catalog.Product], error) {
	var conds []expression.ConditionBuilder
	if f.Status != "" {
		conds = append(conds, expression.Name("status").Equal(expression.Value(f.Status)))
	}
	if f.Category != "" {
		conds = append(conds, expression.Name("category").Equal(expression.Value(f.Category)))
	}
	if f.Tag != "" {
		conds = append(conds, expression.Name("tags").Contains(f.Tag))
	}
	if f.Search != "" {
		conds = append(conds, expression.Or(
			expression.Name("name").Contains(f.Search),
			expression.Name("description").Contains(f.Search),
			expression.Name("sku").Contains(f.Search),
		))
	}
	if f.MinPrice != nil {
		conds = append(conds, expression.Name("price").GreaterThanEqual(expression.Value(*f.MinPrice)))
	}
	if f.MaxPrice != nil {
		conds = append(conds, expression.Name("price").LessThanEqual(expression.Value(*f.MaxPrice)))
	}

	var items []catalog.Product
	if err := r.t.scan(ctx, and(conds), nil, decodeInto(&items)); err != nil {
		return catalog.ListResult[catalog.Product]{}, err
	}
	return newestFirst(items, func(p catalog.Product) string { return p.CreatedAt }, f.Limit), nil
}

// AllTags returns the raw tag lists of every product, reading only the tags attribute.
func (r *ProductRepository) AllTags(ctx context.Context) ([][]string, error) {
	return scanTags(ctx, r.t)
}

// FindByID returns a NotFound error when no product has the id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	var p catalog.Product
	found, err := r.t.get(ctx, id, &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.NewNotFoundError("product")
	}
	return &p, nil
}

// Create stores p as given, generating an id when empty and stamping both timestamps.
func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) (*catalog.Product, error) {
	out := *p
	if out.ID == "" {
		out.ID = newID()
	}
	now := utils.NowISO()
	out.CreatedAt, out.UpdatedAt = now, now

	if err := r.t.create(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch catalog.ProductPatch) (*catalog.Product, error) {
	var p catalog.Product
	if err := r.t.update(ctx, id, patch.Fields(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *ProductRepository) GetStats(ctx context.Context) (catalog.StatusCounts, error) {
	return r.t.countByStatus(ctx, catalog.ProductStatuses)
}

func (r *ProductRepository) TestConnection(ctx context.Context) bool {
	return r.t.describe(ctx)
}

// Table returns the table name.
func (r *ProductRepository) Table() string { return r.t.name }
