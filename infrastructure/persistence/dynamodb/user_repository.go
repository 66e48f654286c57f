package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"go.uber.org/zap"

	"catalog-admin/domain/catalog"
	pkgerrors "catalog-admin/pkg/errors"
	"catalog-admin/pkg/observability"
	"catalog-admin/pkg/utils"
)

// UserRepository stores console accounts. Email lookups use the email GSI when
// one is configured and a filtered scan otherwise.
type UserRepository struct {
	t          *table
	emailIndex string
}

// NewUserRepository creates a new user repository
func NewUserRepository(client DynamoDBAPI, tables Tables, logger *zap.Logger, metrics *observability.Metrics) *UserRepository {
	return &UserRepository{
		t:          newTable(client, tables.Users, "user", logger, metrics),
		emailIndex: tables.UsersEmail,
	}
}

func (r *UserRepository) FindAll(ctx context.Context, f catalog.UserFilter) (catalog.ListResult[catalog.User], error) {
	var conds []expression.ConditionBuilder
	if f.Role != "" {
		conds = append(conds, expression.Name("role").Equal(expression.Value(f.Role)))
	}
	if f.Status != "" {
		conds = append(conds, expression.Name("status").Equal(expression.Value(f.Status)))
	}
	if f.Search != "" {
		conds = append(conds, expression.Or(
			expression.Name("email").Contains(catalog.NormalizeEmail(f.Search)),
			expression.Name("name").Contains(f.Search),
		))
	}

	var items []catalog.User
	if err := r.t.scan(ctx, and(conds), nil, decodeInto(&items)); err != nil {
		return catalog.ListResult[catalog.User]{}, err
	}
	return newestFirst(items, func(u catalog.User) string { return u.CreatedAt }, f.Limit), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*catalog.User, error) {
	var u catalog.User
	found, err := r.t.get(ctx, id, &u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	return &u, nil
}

// FindByEmail reports found=false with a nil error when no account has the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*catalog.User, bool, error) {
	email = catalog.NormalizeEmail(email)
	if email == "" {
		return nil, false, nil
	}

	var match *catalog.User
	visit := func(it item) error {
		if match != nil {
			return nil
		}
		var u catalog.User
		if err := attributevalue.UnmarshalMap(it, &u); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}
		match = &u
		return nil
	}

	var err error
	if r.emailIndex != "" {
		key := expression.Key("email").Equal(expression.Value(email))
		err = r.t.query(ctx, r.emailIndex, key, nil, visit)
	} else {
		cond := expression.Name("email").Equal(expression.Value(email))
		err = r.t.scan(ctx, &cond, nil, visit)
	}
	if err != nil {
		return nil, false, err
	}
	if match == nil {
		return nil, false, nil
	}

	// GSI projections may omit attributes, so reload the full item.
	if r.emailIndex != "" {
		full, err := r.FindByID(ctx, match.ID)
		if err != nil {
			if pkgerrors.IsNotFound(err) {
				return nil, false, nil
			}
			return nil, false, err
		}
		match = full
	}
	return match, true, nil
}

// Create stores u with its email normalized. u.Password must already be a hash.
func (r *UserRepository) Create(ctx context.Context, u *catalog.User) (*catalog.User, error) {
	out := *u
	if out.ID == "" {
		out.ID = newID()
	}
	out.Email = catalog.NormalizeEmail(out.Email)
	now := utils.NowISO()
	out.CreatedAt, out.UpdatedAt = now, now

	if err := r.t.create(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch catalog.UserPatch) (*catalog.User, error) {
	var u catalog.User
	if err := r.t.update(ctx, id, patch.Fields(), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// TouchLogin stamps lastLoginAt without changing updatedAt.
func (r *UserRepository) TouchLogin(ctx context.Context, id string) error {
	return r.t.touch(ctx, id, map[string]interface{}{"lastLoginAt": utils.NowISO()})
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *UserRepository) GetStats(ctx context.Context) (catalog.StatusCounts, error) {
	return r.t.countByStatus(ctx, catalog.UserStatuses)
}

// GetUserStats counts users by status and by role in a single scan.
func (r *UserRepository) GetUserStats(ctx context.Context) (catalog.UserStats, error) {
	stats := catalog.NewUserStats()
	proj := expression.NamesList(expression.Name("status"), expression.Name("role"))

	err := r.t.scan(ctx, nil, &proj, func(it item) error {
		var row struct {
			Status string `dynamodbav:"status"`
			Role   string `dynamodbav:"role"`
		}
		if err := attributevalue.UnmarshalMap(it, &row); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}
		stats.Add(row.Status, row.Role)
		return nil
	})
	if err != nil {
		return catalog.UserStats{}, err
	}
	return stats, nil
}

func (r *UserRepository) TestConnection(ctx context.Context) bool {
	return r.t.describe(ctx)
}

// Table returns the table name.
func (r *UserRepository) Table() string { return r.t.name }
