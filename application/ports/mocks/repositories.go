// Package mocks holds testify mocks of the application ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/domain/events"
)

var (
	_ ports.ProductRepository   = (*MockProductRepository)(nil)
	_ ports.ProviderRepository  = (*MockProviderRepository)(nil)
	_ ports.UserRepository      = (*MockUserRepository)(nil)
	_ ports.LogoRepository      = (*MockLogoRepository)(nil)
	_ ports.EventPublisher      = (*MockEventPublisher)(nil)
	_ ports.CredentialsProvider = (*MockCredentialsProvider)(nil)
)

// MockProductRepository is a mock implementation of ports.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context, f catalog.ProductFilter) (catalog.ListResult[catalog.Product], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(catalog.ListResult[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *catalog.Product) (*catalog.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*catalog.Product)
	return out, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, patch catalog.ProductPatch) (*catalog.Product, error) {
	args := m.Called(ctx, id, patch)
	out, _ := args.Get(0).(*catalog.Product)
	return out, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) GetStats(ctx context.Context) (catalog.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.StatusCounts), args.Error(1)
}

func (m *MockProductRepository) AllTags(ctx context.Context) ([][]string, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([][]string)
	return out, args.Error(1)
}

func (m *MockProductRepository) TestConnection(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockProductRepository) Table() string { return "products" }

// MockProviderRepository is a mock implementation of ports.ProviderRepository
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindAll(ctx context.Context, f catalog.ProviderFilter) (catalog.ListResult[catalog.Provider], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(catalog.ListResult[catalog.Provider]), args.Error(1)
}

func (m *MockProviderRepository) FindByID(ctx context.Context, id string) (*catalog.Provider, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Provider)
	return p, args.Error(1)
}

func (m *MockProviderRepository) Create(ctx context.Context, p *catalog.Provider) (*catalog.Provider, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*catalog.Provider)
	return out, args.Error(1)
}

func (m *MockProviderRepository) Update(ctx context.Context, id string, patch catalog.ProviderPatch) (*catalog.Provider, error) {
	args := m.Called(ctx, id, patch)
	out, _ := args.Get(0).(*catalog.Provider)
	return out, args.Error(1)
}

func (m *MockProviderRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProviderRepository) GetStats(ctx context.Context) (catalog.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.StatusCounts), args.Error(1)
}

func (m *MockProviderRepository) AllTags(ctx context.Context) ([][]string, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([][]string)
	return out, args.Error(1)
}

func (m *MockProviderRepository) TestConnection(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockProviderRepository) Table() string { return "providers" }

// MockUserRepository is a mock implementation of ports.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context, f catalog.UserFilter) (catalog.ListResult[catalog.User], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(catalog.ListResult[catalog.User]), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*catalog.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*catalog.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*catalog.User, bool, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*catalog.User)
	return u, args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) Create(ctx context.Context, u *catalog.User) (*catalog.User, error) {
	args := m.Called(ctx, u)
	out, _ := args.Get(0).(*catalog.User)
	return out, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, patch catalog.UserPatch) (*catalog.User, error) {
	args := m.Called(ctx, id, patch)
	out, _ := args.Get(0).(*catalog.User)
	return out, args.Error(1)
}

func (m *MockUserRepository) TouchLogin(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) GetStats(ctx context.Context) (catalog.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.StatusCounts), args.Error(1)
}

func (m *MockUserRepository) GetUserStats(ctx context.Context) (catalog.UserStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.UserStats), args.Error(1)
}

func (m *MockUserRepository) TestConnection(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockUserRepository) Table() string { return "users" }

// MockLogoRepository is a mock implementation of ports.LogoRepository
type MockLogoRepository struct {
	mock.Mock
}

func (m *MockLogoRepository) FindAll(ctx context.Context, f catalog.LogoFilter) (catalog.ListResult[catalog.Logo], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(catalog.ListResult[catalog.Logo]), args.Error(1)
}

func (m *MockLogoRepository) FindByID(ctx context.Context, id string) (*catalog.Logo, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*catalog.Logo)
	return l, args.Error(1)
}

func (m *MockLogoRepository) Create(ctx context.Context, l *catalog.Logo) (*catalog.Logo, error) {
	args := m.Called(ctx, l)
	out, _ := args.Get(0).(*catalog.Logo)
	return out, args.Error(1)
}

func (m *MockLogoRepository) Update(ctx context.Context, id string, patch catalog.LogoPatch) (*catalog.Logo, error) {
	args := m.Called(ctx, id, patch)
	out, _ := args.Get(0).(*catalog.Logo)
	return out, args.Error(1)
}

func (m *MockLogoRepository) SetPrimary(ctx context.Context, id string) (*catalog.Logo, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*catalog.Logo)
	return out, args.Error(1)
}

func (m *MockLogoRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLogoRepository) GetStats(ctx context.Context) (catalog.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.StatusCounts), args.Error(1)
}

func (m *MockLogoRepository) TestConnection(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockLogoRepository) Table() string { return "logos" }

// MockEventPublisher is a mock implementation of ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) PublishBatch(ctx context.Context, evts []events.DomainEvent) error {
	return m.Called(ctx, evts).Error(0)
}

// MockCredentialsProvider is a mock implementation of ports.CredentialsProvider
type MockCredentialsProvider struct {
	mock.Mock
}

func (m *MockCredentialsProvider) Authenticate(ctx context.Context, email, password string) (*catalog.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*catalog.User)
	return u, args.Error(1)
}

func (m *MockCredentialsProvider) Mode() string { return "mock" }
