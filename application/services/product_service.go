package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/domain/events"
	"catalog-admin/pkg/observability"
)

// ProductService validates product input, applies defaults and calls the repository.
type ProductService struct {
	repo   ports.ProductRepository
	notify notifier
	logger *zap.Logger
}

var _ ports.ProductService = (*ProductService)(nil)

// NewProductService creates a new product service
func NewProductService(
	repo ports.ProductRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		repo:   repo,
		notify: notifier{publisher: publisher, metrics: metrics, logger: logger},
		logger: logger,
	}
}

func (s *ProductService) List(ctx context.Context, filter catalog.ProductFilter) (catalog.ListResult[catalog.Product], error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id string) (*catalog.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create stores a product, defaulting status to draft and currency to USD.
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*catalog.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	p := &catalog.Product{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Currency:    strings.ToUpper(in.Currency),
		Status:      catalog.ProductStatus(in.Status),
		Tags:        in.Tags,
		SKU:         in.SKU,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if p.Status == "" {
		p.Status = catalog.ProductDraft
	}
	if p.Currency == "" {
		p.Currency = catalog.DefaultCurrency
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.notify.changed(ctx, "product", events.ActionCreated, created.ID, nil)
	return created, nil
}

// CreateSimple stores a product with only a name.
func (s *ProductService) CreateSimple(ctx context.Context, in ports.CreateSimpleProductInput) (*catalog.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &catalog.Product{Name: in.Name})
	if err != nil {
		return nil, err
	}
	s.notify.changed(ctx, "product", events.ActionCreated, created.ID, nil)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch catalog.ProductPatch) (*catalog.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	if patch.Currency != nil {
		upper := strings.ToUpper(*patch.Currency)
		patch.Currency = &upper
	}

	fields := patch.Fields()
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.notify.changed(ctx, "product", events.ActionUpdated, id, fields)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify.changed(ctx, "product", events.ActionDeleted, id, nil)
	return nil
}
