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

// ProviderRepository stores providers, one item per provider keyed by id.
type ProviderRepository struct {
	t *table
}

// NewProviderRepository creates a new provider repository
func NewProviderRepository(client DynamoDBAPI, tables Tables, logger *zap.Logger, metrics *observability.Metrics) *ProviderRepository {
	return &ProviderRepository{t: newTable(client, tables.Providers, "provider", logger, metrics)}
}

func (r *ProviderRepository) FindAll(ctx context.Context, f catalog.ProviderFilter) (catalog.ListResult[catalog.Provider], error) {
	var conds []expression.ConditionBuilder
	if f.Status != "" {
		conds = append(conds, expression.Name("status").Equal(expression.Value(f.Status)))
	}
	if f.Industry != "" {
		conds = append(conds, expression.Name("industry").Equal(expression.Value(f.Industry)))
	}
	if f.Tag != "" {
		conds = append(conds, expression.Name("tags").Contains(f.Tag))
	}
	if f.Search != "" {
		conds = append(conds, expression.Or(
			expression.Name("name").Contains(f.Search),
			expression.Name("company").Contains(f.Search),
			expression.Name("email").Contains(f.Search),
		))
	}

	var items []catalog.Provider
	if err := r.t.scan(ctx, and(conds), nil, decodeInto(&items)); err != nil {
		return catalog.ListResult[catalog.Provider]{}, err
	}
	return newestFirst(items, func(p catalog.Provider) string { return p.CreatedAt }, f.Limit), nil
}

// AllTags returns the raw tag lists of every provider, reading only the tags attribute.
func (r *ProviderRepository) AllTags(ctx context.Context) ([][]string, error) {
	return scanTags(ctx, r.t)
}

func (r *ProviderRepository) FindByID(ctx context.Context, id string) (*catalog.Provider, error) {
	var p catalog.Provider
	found, err := r.t.get(ctx, id, &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.NewNotFoundError("provider")
	}
	return &p, nil
}

func (r *ProviderRepository) Create(ctx context.Context, p *catalog.Provider) (*catalog.Provider, error) {
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

func (r *ProviderRepository) Update(ctx context.Context, id string, patch catalog.ProviderPatch) (*catalog.Provider, error) {
	var p catalog.Provider
	if err := r.t.update(ctx, id, patch.Fields(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *ProviderRepository) GetStats(ctx context.Context) (catalog.StatusCounts, error) {
	return r.t.countByStatus(ctx, catalog.ProviderStatuses)
}

func (r *ProviderRepository) TestConnection(ctx context.Context) bool {
	return r.t.describe(ctx)
}

// Table returns the table name.
func (r *ProviderRepository) Table() string { return r.t.name }
