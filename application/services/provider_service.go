package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/domain/events"
	pkgerrors "catalog-admin/pkg/errors"
	"catalog-admin/pkg/observability"
	"catalog-admin/pkg/utils"
)

// ProviderService validates provider input and calls the repository.
type ProviderService struct {
	repo   ports.ProviderRepository
	notify notifier
	logger *zap.Logger
}

var _ ports.ProviderService = (*ProviderService)(nil)

// NewProviderService creates a new provider service
func NewProviderService(
	repo ports.ProviderRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ProviderService {
	return &ProviderService{
		repo:   repo,
		notify: notifier{publisher: publisher, metrics: metrics, logger: logger},
		logger: logger,
	}
}

func (s *ProviderService) List(ctx context.Context, filter catalog.ProviderFilter) (catalog.ListResult[catalog.Provider], error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *ProviderService) Get(ctx context.Context, id string) (*catalog.Provider, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create stores a provider. Status defaults to pending.
func (s *ProviderService) Create(ctx context.Context, in ports.CreateProviderInput) (*catalog.Provider, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	p := &catalog.Provider{
		ID:       in.ID,
		Name:     in.Name,
		Company:  in.Company,
		Industry: in.Industry,
		Email:    strings.TrimSpace(in.Email),
		Phone:    in.Phone,
		Website:  in.Website,
		Tags:     in.Tags,
		Status:   catalog.ProviderStatus(in.Status),
	}
	if p.Status == "" {
		p.Status = catalog.ProviderPending
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.notify.changed(ctx, "provider", events.ActionCreated, created.ID, nil)
	return created, nil
}

func (s *ProviderService) Update(ctx context.Context, id string, patch catalog.ProviderPatch) (*catalog.Provider, error) {
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
	s.notify.changed(ctx, "provider", events.ActionUpdated, id, fields)
	return updated, nil
}

func (s *ProviderService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify.changed(ctx, "provider", events.ActionDeleted, id, nil)
	return nil
}

// validateInput runs the struct's validate tags and reports failures as a validation error.
func validateInput(v interface{}) error {
	if err := utils.ValidateStruct(v); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.NewValidationError("id is required")
	}
	return nil
}
