package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"catalog-admin/application/ports"
)

// Probe is anything that can report whether its table answers.
type Probe interface {
	TestConnection(ctx context.Context) bool
	Table() string
}

// DiagnosticsService probes every table with DescribeTable.
type DiagnosticsService struct {
	probes []Probe
}

var _ ports.DiagnosticsService = (*DiagnosticsService)(nil)

// NewDiagnosticsService creates a new diagnostics service
func NewDiagnosticsService(
	users ports.UserRepository,
	products ports.ProductRepository,
	providers ports.ProviderRepository,
	logos ports.LogoRepository,
) *DiagnosticsService {
	return &DiagnosticsService{probes: []Probe{users, products, providers, logos}}
}

// Connections probes all tables concurrently.
func (s *DiagnosticsService) Connections(ctx context.Context) map[string]bool {
	var (
		mu  sync.Mutex
		g   errgroup.Group
		out = make(map[string]bool, len(s.probes))
	)
	for _, p := range s.probes {
		g.Go(func() error {
			ok := p.TestConnection(ctx)
			mu.Lock()
			out[p.Table()] = ok
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Ready reports whether every table answered.
func (s *DiagnosticsService) Ready(ctx context.Context) bool {
	for _, ok := range s.Connections(ctx) {
		if !ok {
			return false
		}
	}
	return true
}
