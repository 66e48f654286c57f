package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	pkgerrors "catalog-admin/pkg/errors"
)

// Auth modes.
const (
	AuthModeStore       = "store"
	AuthModeDevelopment = "development"
)

const invalidCredentials = "invalid credentials"

// StoreCredentials verifies passwords against the bcrypt hashes in the users table.
type StoreCredentials struct {
	users  ports.UserRepository
	logger *zap.Logger
}

var _ ports.CredentialsProvider = (*StoreCredentials)(nil)

// NewStoreCredentials creates the store-backed credentials provider
func NewStoreCredentials(users ports.UserRepository, logger *zap.Logger) *StoreCredentials {
	return &StoreCredentials{users: users, logger: logger}
}

func (p *StoreCredentials) Mode() string { return AuthModeStore }

// Authenticate looks the user up by email, compares the hash and requires an
// active account. Every rejection gets the same message.
func (p *StoreCredentials) Authenticate(ctx context.Context, email, password string) (*catalog.User, error) {
	user, found, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found || user.Password == "" {
		// Unknown emails still cost one bcrypt comparison.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, pkgerrors.NewUnauthorizedError(invalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, pkgerrors.NewUnauthorizedError(invalidCredentials)
	}
	if !user.IsActive() {
		p.logger.Info("Login rejected for non-active account",
			zap.String("userID", user.ID),
			zap.String("status", string(user.Status)),
		)
		return nil, pkgerrors.NewUnauthorizedError(invalidCredentials)
	}

	if err := p.users.TouchLogin(ctx, user.ID); err != nil {
		p.logger.Warn("Failed to stamp lastLoginAt", zap.String("userID", user.ID), zap.Error(err))
	}
	return user, nil
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("catalog-admin-placeholder"), bcrypt.DefaultCost)

// DevCredentials accepts any non-empty pair and grants a fixed role. It is only
// constructed when AUTH_MODE=development, which config validation forbids in production.
type DevCredentials struct {
	role catalog.Role
}

var _ ports.CredentialsProvider = (*DevCredentials)(nil)

// NewDevCredentials creates the development credentials stub
func NewDevCredentials(role catalog.Role) *DevCredentials {
	if !role.IsValid() {
		role = catalog.RoleAdmin
	}
	return &DevCredentials{role: role}
}

func (p *DevCredentials) Mode() string { return AuthModeDevelopment }

// Authenticate returns a synthetic active user whose id is derived from the email.
func (p *DevCredentials) Authenticate(_ context.Context, email, password string) (*catalog.User, error) {
	email = catalog.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, pkgerrors.NewUnauthorizedError(invalidCredentials)
	}
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	return &catalog.User{
		ID:     uuid.NewSHA1(uuid.NameSpaceURL, []byte("catalog-admin:"+email)).String(),
		Email:  email,
		Name:   name,
		Role:   p.role,
		Status: catalog.UserActive,
	}, nil
}
