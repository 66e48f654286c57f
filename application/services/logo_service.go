package services

import (
	"context"

	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/domain/events"
	"catalog-admin/pkg/observability"
)

// LogoService manages client logos and the per-client primary flag.
type LogoService struct {
	repo   ports.LogoRepository
	notify notifier
	logger *zap.Logger
}

var _ ports.LogoService = (*LogoService)(nil)

// NewLogoService creates a new logo service
func NewLogoService(
	repo ports.LogoRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *LogoService {
	return &LogoService{
		repo:   repo,
		notify: notifier{publisher: publisher, metrics: metrics, logger: logger},
		logger: logger,
	}
}

func (s *LogoService) List(ctx context.Context, filter catalog.LogoFilter) (catalog.ListResult[catalog.Logo], error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *LogoService) Get(ctx context.Context, id string) (*catalog.Logo, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create stores the logo unflagged and, when isPrimary was requested, promotes it
// through SetPrimary so the client's previous primary is cleared.
func (s *LogoService) Create(ctx context.Context, in ports.CreateLogoInput) (*catalog.Logo, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	l := &catalog.Logo{
		ClientID: in.ClientID,
		Variant:  catalog.LogoVariant(in.Variant),
		Brand:    in.Brand,
		Version:  in.Version,
		FileURL:  in.FileURL,
		FileType: in.FileType,
		FileSize: in.FileSize,
		Status:   catalog.LogoStatus(in.Status),
	}
	if l.Status == "" {
		l.Status = catalog.LogoActive
	}

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	s.notify.changed(ctx, "logo", events.ActionCreated, created.ID, nil)

	if !in.IsPrimary {
		return created, nil
	}
	return s.SetPrimary(ctx, created.ID)
}

func (s *LogoService) Update(ctx context.Context, id string, patch catalog.LogoPatch) (*catalog.Logo, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}

	fields := patch.Fields()
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.notify.changed(ctx, "logo", events.ActionUpdated, id, fields)
	return updated, nil
}

func (s *LogoService) SetPrimary(ctx context.Context, id string) (*catalog.Logo, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	logo, err := s.repo.SetPrimary(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notify.changed(ctx, "logo", events.ActionPrimary, id, map[string]interface{}{"isPrimary": true})
	return logo, nil
}

func (s *LogoService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify.changed(ctx, "logo", events.ActionDeleted, id, nil)
	return nil
}
