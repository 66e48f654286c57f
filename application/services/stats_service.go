package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
)

// StatsService builds the dashboard summary from three independent reads.
type StatsService struct {
	users     ports.UserRepository
	products  ports.ProductRepository
	providers ports.ProviderRepository
	logger    *zap.Logger
}

var _ ports.StatsService = (*StatsService)(nil)

// NewStatsService creates a new stats service
func NewStatsService(
	users ports.UserRepository,
	products ports.ProductRepository,
	providers ports.ProviderRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{users: users, products: products, providers: providers, logger: logger}
}

// Summary runs the three counts concurrently. The first failure cancels the others.
// The counts are not a consistent snapshot of each other.
func (s *StatsService) Summary(ctx context.Context) (catalog.Summary, error) {
	var sum catalog.Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := s.users.GetStats(gctx)
		sum.Users = c
		return err
	})
	g.Go(func() error {
		c, err := s.products.GetStats(gctx)
		sum.Products = c
		return err
	})
	g.Go(func() error {
		c, err := s.providers.GetStats(gctx)
		sum.Providers = c
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Stats summary failed", zap.Error(err))
		return catalog.Summary{}, err
	}
	return sum, nil
}
