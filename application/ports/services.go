package ports

import (
	"context"
	"time"

	"catalog-admin/domain/catalog"
	"catalog-admin/domain/tags"
	"catalog-admin/pkg/auth"
)

// CreateProductInput is the body of POST /api/products.
type CreateProductInput struct {
	ID          string   `json:"id,omitempty" validate:"omitempty,max=64"`
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    string   `json:"category,omitempty" validate:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive draft archived"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=50,dive,max=50"`
	SKU         string   `json:"sku,omitempty" validate:"omitempty,max=64"`
}

// CreateSimpleProductInput is the body of POST /api/simple-dynamodb/products.
type CreateSimpleProductInput struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CreateProviderInput is the body of POST /api/providers.
type CreateProviderInput struct {
	ID       string   `json:"id,omitempty" validate:"omitempty,max=64"`
	Name     string   `json:"name" validate:"required,min=1,max=200"`
	Company  string   `json:"company,omitempty" validate:"omitempty,max=200"`
	Industry string   `json:"industry,omitempty" validate:"omitempty,max=100"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string   `json:"phone,omitempty" validate:"omitempty,max=40"`
	Website  string   `json:"website,omitempty" validate:"omitempty,url"`
	Tags     []string `json:"tags,omitempty" validate:"omitempty,max=50,dive,max=50"`
	Status   string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending"`
}

// CreateUserInput is the body of POST /api/users.
type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin ejecutivo cliente"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=active pending inactive"`
}

// CreateLogoInput is the body of POST /api/logos.
type CreateLogoInput struct {
	ClientID  string `json:"clientId" validate:"required,max=64"`
	Variant   string `json:"variant" validate:"required,oneof=primary secondary icon monochrome horizontal vertical"`
	Brand     string `json:"brand,omitempty" validate:"omitempty,max=200"`
	Version   string `json:"version,omitempty" validate:"omitempty,max=40"`
	FileURL   string `json:"fileUrl" validate:"required,url"`
	FileType  string `json:"fileType,omitempty" validate:"omitempty,max=40"`
	FileSize  int64  `json:"fileSize,omitempty" validate:"omitempty,gte=0"`
	IsPrimary bool   `json:"isPrimary,omitempty"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=active inactive archived"`
}

// LoginInput is the body of POST /api/auth/login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is an issued session token.
type Session struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *catalog.User `json:"user"`
}

// ProductService is the product use-case boundary used by the HTTP layer.
type ProductService interface {
	List(ctx context.Context, filter catalog.ProductFilter) (catalog.ListResult[catalog.Product], error)
	Get(ctx context.Context, id string) (*catalog.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*catalog.Product, error)

	// CreateSimple stores only a name, applying no defaults
	CreateSimple(ctx context.Context, in CreateSimpleProductInput) (*catalog.Product, error)

	Update(ctx context.Context, id string, patch catalog.ProductPatch) (*catalog.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProviderService is the provider use-case boundary.
type ProviderService interface {
	List(ctx context.Context, filter catalog.ProviderFilter) (catalog.ListResult[catalog.Provider], error)
	Get(ctx context.Context, id string) (*catalog.Provider, error)
	Create(ctx context.Context, in CreateProviderInput) (*catalog.Provider, error)
	Update(ctx context.Context, id string, patch catalog.ProviderPatch) (*catalog.Provider, error)
	Delete(ctx context.Context, id string) error
}

// UserService is the account administration boundary.
type UserService interface {
	List(ctx context.Context, filter catalog.UserFilter) (catalog.ListResult[catalog.User], error)
	Get(ctx context.Context, id string) (*catalog.User, error)
	Create(ctx context.Context, in CreateUserInput) (*catalog.User, error)
	Update(ctx context.Context, id string, patch catalog.UserPatch) (*catalog.User, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (catalog.UserStats, error)
}

// LogoService is the logo use-case boundary.
type LogoService interface {
	List(ctx context.Context, filter catalog.LogoFilter) (catalog.ListResult[catalog.Logo], error)
	Get(ctx context.Context, id string) (*catalog.Logo, error)
	Create(ctx context.Context, in CreateLogoInput) (*catalog.Logo, error)
	Update(ctx context.Context, id string, patch catalog.LogoPatch) (*catalog.Logo, error)
	SetPrimary(ctx context.Context, id string) (*catalog.Logo, error)
	Delete(ctx context.Context, id string) error
}

// StatsService builds dashboard summaries.
type StatsService interface {
	Summary(ctx context.Context) (catalog.Summary, error)
}

// TagService serves the normalized tag vocabulary.
type TagService interface {
	List(ctx context.Context, source string) ([]string, error)
	Colors(ctx context.Context, source string) ([]tags.TagColor, error)
}

// AuthService runs the credentials login flow.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*Session, error)
	VerifyToken(ctx context.Context, token string) (*auth.Claims, error)
	GetUser(ctx context.Context, email string) (*catalog.User, error)
}

// DiagnosticsService probes the backing tables.
type DiagnosticsService interface {
	// Ready reports whether every table answers
	Ready(ctx context.Context) bool

	// Connections reports per-table reachability keyed by table name
	Connections(ctx context.Context) map[string]bool
}

// CredentialsProvider verifies a submitted email/password pair.
type CredentialsProvider interface {
	// Authenticate returns an Unauthorized error when the pair is not accepted
	Authenticate(ctx context.Context, email, password string) (*catalog.User, error)

	// Mode names the provider ("development" or "store")
	Mode() string
}
