package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/domain/events"
	pkgerrors "catalog-admin/pkg/errors"
	"catalog-admin/pkg/observability"
)

// UserService administers console accounts. Passwords are stored as bcrypt hashes
// and emails are unique by convention: every write checks the email lookup first.
type UserService struct {
	repo       ports.UserRepository
	notify     notifier
	logger     *zap.Logger
	bcryptCost int
}

var _ ports.UserService = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(
	repo ports.UserRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		repo:       repo,
		notify:     notifier{publisher: publisher, metrics: metrics, logger: logger},
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *UserService) List(ctx context.Context, filter catalog.UserFilter) (catalog.ListResult[catalog.User], error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, id string) (*catalog.User, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create hashes the password and stores the account. Role defaults to cliente
// and status to active. A taken email is a conflict.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*catalog.User, error) {
	in.Email = catalog.NormalizeEmail(in.Email)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := checkPasswordLength(in.Password); err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(ctx, in.Email, ""); err != nil {
		return nil, err
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &catalog.User{
		Email:    in.Email,
		Password: hash,
		Name:     in.Name,
		Role:     catalog.Role(in.Role),
		Status:   catalog.UserStatus(in.Status),
	}
	if u.Role == "" {
		u.Role = catalog.RoleCliente
	}
	if u.Status == "" {
		u.Status = catalog.UserActive
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User created",
		zap.String("userID", created.ID),
		zap.String("role", string(created.Role)),
	)
	s.notify.changed(ctx, "user", events.ActionCreated, created.ID, nil)
	return created, nil
}

// Update applies a partial update. A new password is hashed before it is stored.
func (s *UserService) Update(ctx context.Context, id string, patch catalog.UserPatch) (*catalog.User, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}
	if patch.Password != nil {
		if err := checkPasswordLength(*patch.Password); err != nil {
			return nil, err
		}
	}

	if patch.Email != nil {
		email := catalog.NormalizeEmail(*patch.Email)
		if err := s.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
		patch.Email = &email
	}
	if patch.Password != nil {
		hash, err := s.hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}

	fields := patch.Fields()
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.notify.changed(ctx, "user", events.ActionUpdated, id, fields)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify.changed(ctx, "user", events.ActionDeleted, id, nil)
	return nil
}

// Stats counts users by status and by role.
func (s *UserService) Stats(ctx context.Context) (catalog.UserStats, error) {
	return s.repo.GetUserStats(ctx)
}

func (s *UserService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if found && existing.ID != selfID {
		return pkgerrors.NewConflictError("a user with this email already exists").WithCode("EMAIL_TAKEN")
	}
	return nil
}

// bcrypt only hashes the first 72 bytes and rejects anything longer.
const maxPasswordBytes = 72

func checkPasswordLength(password string) error {
	if len(password) > maxPasswordBytes {
		return pkgerrors.NewValidationError("password must be at most 72 bytes")
	}
	return nil
}

func (s *UserService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", pkgerrors.NewValidationError("password must be at most 72 bytes")
	}
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to hash password").WithCause(err)
	}
	return string(hash), nil
}
