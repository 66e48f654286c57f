package services

import (
	"context"

	"catalog-admin/application/ports"
	"catalog-admin/domain/tags"
	pkgerrors "catalog-admin/pkg/errors"
)

// Tag sources accepted by the tags endpoint.
const (
	TagSourceProviders = "providers"
	TagSourceProducts  = "products"
	TagSourceAll       = "all"
)

// TagService collects stored tags and normalizes them on read.
type TagService struct {
	providers ports.ProviderRepository
	products  ports.ProductRepository
}

var _ ports.TagService = (*TagService)(nil)

// NewTagService creates a new tag service
func NewTagService(providers ports.ProviderRepository, products ports.ProductRepository) *TagService {
	return &TagService{providers: providers, products: products}
}

// List returns the sorted, deduplicated, normalized tags of the source. An empty
// source means providers.
func (s *TagService) List(ctx context.Context, source string) ([]string, error) {
	var lists [][]string
	switch source {
	case "", TagSourceProviders:
		got, err := s.providers.AllTags(ctx)
		if err != nil {
			return nil, err
		}
		lists = got
	case TagSourceProducts:
		got, err := s.products.AllTags(ctx)
		if err != nil {
			return nil, err
		}
		lists = got
	case TagSourceAll:
		p, err := s.providers.AllTags(ctx)
		if err != nil {
			return nil, err
		}
		q, err := s.products.AllTags(ctx)
		if err != nil {
			return nil, err
		}
		lists = append(p, q...)
	default:
		return nil, pkgerrors.NewValidationError("source must be one of providers, products, all")
	}
	return tags.Collect(lists...), nil
}

// Colors pairs every tag of the source with its badge colour.
func (s *TagService) Colors(ctx context.Context, source string) ([]tags.TagColor, error) {
	list, err := s.List(ctx, source)
	if err != nil {
		return nil, err
	}
	return tags.Colors(list), nil
}
