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

// LogoRepository stores client logos. Listing by client queries the clientId
// GSI when one is configured.
type LogoRepository struct {
	t           *table
	clientIndex string
	logger      *zap.Logger
}

// NewLogoRepository creates a new logo repository
func NewLogoRepository(client DynamoDBAPI, tables Tables, logger *zap.Logger, metrics *observability.Metrics) *LogoRepository {
	return &LogoRepository{
		t:           newTable(client, tables.Logos, "logo", logger, metrics),
		clientIndex: tables.LogosClient,
		logger:      logger,
	}
}

func (r *LogoRepository) FindAll(ctx context.Context, f catalog.LogoFilter) (catalog.ListResult[catalog.Logo], error) {
	var conds []expression.ConditionBuilder
	if f.Variant != "" {
		conds = append(conds, expression.Name("variant").Equal(expression.Value(f.Variant)))
	}
	if f.Status != "" {
		conds = append(conds, expression.Name("status").Equal(expression.Value(f.Status)))
	}
	if f.PrimaryOnly {
		conds = append(conds, expression.Name("isPrimary").Equal(expression.Value(true)))
	}

	var items []catalog.Logo
	var err error
	switch {
	case f.ClientID != "" && r.clientIndex != "":
		key := expression.Key("clientId").Equal(expression.Value(f.ClientID))
		err = r.t.query(ctx, r.clientIndex, key, and(conds), decodeInto(&items))
	case f.ClientID != "":
		conds = append(conds, expression.Name("clientId").Equal(expression.Value(f.ClientID)))
		fallthrough
	default:
		err = r.t.scan(ctx, and(conds), nil, decodeInto(&items))
	}
	if err != nil {
		return catalog.ListResult[catalog.Logo]{}, err
	}
	return newestFirst(items, func(l catalog.Logo) string { return l.CreatedAt }, f.Limit), nil
}

func (r *LogoRepository) FindByID(ctx context.Context, id string) (*catalog.Logo, error) {
	var l catalog.Logo
	found, err := r.t.get(ctx, id, &l)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.NewNotFoundError("logo")
	}
	return &l, nil
}

func (r *LogoRepository) Create(ctx context.Context, l *catalog.Logo) (*catalog.Logo, error) {
	out := *l
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

func (r *LogoRepository) Update(ctx context.Context, id string, patch catalog.LogoPatch) (*catalog.Logo, error) {
	var l catalog.Logo
	if err := r.t.update(ctx, id, patch.Fields(), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// SetPrimary marks the logo as its client's primary and clears the flag on the
// client's other logos. Items are written one at a time; a failure part way
// leaves earlier writes in place.
func (r *LogoRepository) SetPrimary(ctx context.Context, id string) (*catalog.Logo, error) {
	target, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current, err := r.FindAll(ctx, catalog.LogoFilter{ClientID: target.ClientID, PrimaryOnly: true})
	if err != nil {
		return nil, err
	}
	for _, other := range current.Items {
		if other.ID == target.ID {
			continue
		}
		if err := r.setPrimaryFlag(ctx, other.ID, false, nil); err != nil {
			r.logger.Warn("Failed to clear primary logo",
				zap.String("clientId", target.ClientID),
				zap.String("logoId", other.ID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	var updated catalog.Logo
	if err := r.setPrimaryFlag(ctx, target.ID, true, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *LogoRepository) setPrimaryFlag(ctx context.Context, id string, primary bool, out *catalog.Logo) error {
	var dst interface{}
	if out != nil {
		dst = out
	}
	return r.t.update(ctx, id, map[string]interface{}{"isPrimary": primary}, dst)
}

func (r *LogoRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *LogoRepository) GetStats(ctx context.Context) (catalog.StatusCounts, error) {
	return r.t.countByStatus(ctx, catalog.LogoStatuses)
}

func (r *LogoRepository) TestConnection(ctx context.Context) bool {
	return r.t.describe(ctx)
}

// Table returns the table name.
func (r *LogoRepository) Table() string { return r.t.name }
