package ports

import (
	"context"

	"catalog-admin/domain/catalog"
	"catalog-admin/domain/events"
)

// ProductRepository defines the interface for product persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type ProductRepository interface {
	// FindAll returns the products matching the filter plus the total match count
	FindAll(ctx context.Context, filter catalog.ProductFilter) (catalog.ListResult[catalog.Product], error)

	// FindByID returns a NotFound error when the product does not exist
	FindByID(ctx context.Context, id string) (*catalog.Product, error)

	// Create generates an id when empty and stamps createdAt/updatedAt
	Create(ctx context.Context, product *catalog.Product) (*catalog.Product, error)

	// Update applies a partial update and stamps updatedAt
	Update(ctx context.Context, id string, patch catalog.ProductPatch) (*catalog.Product, error)

	Delete(ctx context.Context, id string) error

	// GetStats counts products by status
	GetStats(ctx context.Context) (catalog.StatusCounts, error)

	// AllTags returns the stored tag list of every product
	AllTags(ctx context.Context) ([][]string, error)

	TestConnection(ctx context.Context) bool
	Table() string
}

// ProviderRepository defines the interface for provider persistence
type ProviderRepository interface {
	FindAll(ctx context.Context, filter catalog.ProviderFilter) (catalog.ListResult[catalog.Provider], error)
	FindByID(ctx context.Context, id string) (*catalog.Provider, error)
	Create(ctx context.Context, provider *catalog.Provider) (*catalog.Provider, error)
	Update(ctx context.Context, id string, patch catalog.ProviderPatch) (*catalog.Provider, error)
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context) (catalog.StatusCounts, error)
	AllTags(ctx context.Context) ([][]string, error)
	TestConnection(ctx context.Context) bool
	Table() string
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	FindAll(ctx context.Context, filter catalog.UserFilter) (catalog.ListResult[catalog.User], error)
	FindByID(ctx context.Context, id string) (*catalog.User, error)

	// FindByEmail reports found=false with a nil error when no user has the email
	FindByEmail(ctx context.Context, email string) (*catalog.User, bool, error)

	Create(ctx context.Context, user *catalog.User) (*catalog.User, error)
	Update(ctx context.Context, id string, patch catalog.UserPatch) (*catalog.User, error)

	// TouchLogin stamps lastLoginAt
	TouchLogin(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context) (catalog.StatusCounts, error)

	// GetUserStats counts users by status and by role
	GetUserStats(ctx context.Context) (catalog.UserStats, error)

	TestConnection(ctx context.Context) bool
	Table() string
}

// LogoRepository defines the interface for logo persistence
type LogoRepository interface {
	FindAll(ctx context.Context, filter catalog.LogoFilter) (catalog.ListResult[catalog.Logo], error)
	FindByID(ctx context.Context, id string) (*catalog.Logo, error)
	Create(ctx context.Context, logo *catalog.Logo) (*catalog.Logo, error)
	Update(ctx context.Context, id string, patch catalog.LogoPatch) (*catalog.Logo, error)

	// SetPrimary makes the logo its client's only primary logo, one item at a time
	SetPrimary(ctx context.Context, id string) (*catalog.Logo, error)

	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context) (catalog.StatusCounts, error)
	TestConnection(ctx context.Context) bool
	Table() string
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
