package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/domain/tags"
	"catalog-admin/pkg/auth"
)

var (
	_ ports.ProductService     = (*MockProductService)(nil)
	_ ports.ProviderService    = (*MockProviderService)(nil)
	_ ports.UserService        = (*MockUserService)(nil)
	_ ports.LogoService        = (*MockLogoService)(nil)
	_ ports.StatsService       = (*MockStatsService)(nil)
	_ ports.TagService         = (*MockTagService)(nil)
	_ ports.AuthService        = (*MockAuthService)(nil)
	_ ports.DiagnosticsService = (*MockDiagnosticsService)(nil)
)

// MockProductService is a mock implementation of ports.ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, f catalog.ProductFilter) (catalog.ListResult[catalog.Product], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(catalog.ListResult[catalog.Product]), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, in ports.CreateProductInput) (*catalog.Product, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductService) CreateSimple(ctx context.Context, in ports.CreateSimpleProductInput) (*catalog.Product, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, patch catalog.ProductPatch) (*catalog.Product, error) {
	args := m.Called(ctx, id, patch)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockProviderService is a mock implementation of ports.ProviderService
type MockProviderService struct {
	mock.Mock
}

func (m *MockProviderService) List(ctx context.Context, f catalog.ProviderFilter) (catalog.ListResult[catalog.Provider], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(catalog.ListResult[catalog.Provider]), args.Error(1)
}

func (m *MockProviderService) Get(ctx context.Context, id string) (*catalog.Provider, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Provider)
	return p, args.Error(1)
}

func (m *MockProviderService) Create(ctx context.Context, in ports.CreateProviderInput) (*catalog.Provider, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*catalog.Provider)
	return p, args.Error(1)
}

func (m *MockProviderService) Update(ctx context.Context, id string, patch catalog.ProviderPatch) (*catalog.Provider, error) {
	args := m.Called(ctx, id, patch)
	p, _ := args.Get(0).(*catalog.Provider)
	return p, args.Error(1)
}

func (m *MockProviderService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockUserService is a mock implementation of ports.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, f catalog.UserFilter) (catalog.ListResult[catalog.User], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(catalog.ListResult[catalog.User]), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*catalog.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*catalog.User)
	return u, args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, in ports.CreateUserInput) (*catalog.User, error) {
	args := m.Called(ctx, in)
	u, _ := args.Get(0).(*catalog.User)
	return u, args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, patch catalog.UserPatch) (*catalog.User, error) {
	args := m.Called(ctx, id, patch)
	u, _ := args.Get(0).(*catalog.User)
	return u, args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserService) Stats(ctx context.Context) (catalog.UserStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.UserStats), args.Error(1)
}

// MockLogoService is a mock implementation of ports.LogoService
type MockLogoService struct {
	mock.Mock
}

func (m *MockLogoService) List(ctx context.Context, f catalog.LogoFilter) (catalog.ListResult[catalog.Logo], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(catalog.ListResult[catalog.Logo]), args.Error(1)
}

func (m *MockLogoService) Get(ctx context.Context, id string) (*catalog.Logo, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*catalog.Logo)
	return l, args.Error(1)
}

func (m *MockLogoService) Create(ctx context.Context, in ports.CreateLogoInput) (*catalog.Logo, error) {
	args := m.Called(ctx, in)
	l, _ := args.Get(0).(*catalog.Logo)
	return l, args.Error(1)
}

func (m *MockLogoService) Update(ctx context.Context, id string, patch catalog.LogoPatch) (*catalog.Logo, error) {
	args := m.Called(ctx, id, patch)
	l, _ := args.Get(0).(*catalog.Logo)
	return l, args.Error(1)
}

func (m *MockLogoService) SetPrimary(ctx context.Context, id string) (*catalog.Logo, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*catalog.Logo)
	return l, args.Error(1)
}

func (m *MockLogoService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockStatsService is a mock implementation of ports.StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Summary(ctx context.Context) (catalog.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.Summary), args.Error(1)
}

// MockTagService is a mock implementation of ports.TagService
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(ctx context.Context, source string) ([]string, error) {
	args := m.Called(ctx, source)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *MockTagService) Colors(ctx context.Context, source string) ([]tags.TagColor, error) {
	args := m.Called(ctx, source)
	out, _ := args.Get(0).([]tags.TagColor)
	return out, args.Error(1)
}

// MockAuthService is a mock implementation of ports.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.Session, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*ports.Session)
	return s, args.Error(1)
}

func (m *MockAuthService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	c, _ := args.Get(0).(*auth.Claims)
	return c, args.Error(1)
}

func (m *MockAuthService) GetUser(ctx context.Context, email string) (*catalog.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*catalog.User)
	return u, args.Error(1)
}

// MockDiagnosticsService is a mock implementation of ports.DiagnosticsService
type MockDiagnosticsService struct {
	mock.Mock
}

func (m *MockDiagnosticsService) Ready(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockDiagnosticsService) Connections(ctx context.Context) map[string]bool {
	args := m.Called(ctx)
	out, _ := args.Get(0).(map[string]bool)
	return out
}
