package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/domain/events"
	"catalog-admin/pkg/auth"
	pkgerrors "catalog-admin/pkg/errors"
	"catalog-admin/pkg/observability"
)

// AuthService runs the credentials login flow and issues session tokens.
type AuthService struct {
	provider  ports.CredentialsProvider
	sessions  *auth.SessionManager
	users     ports.UserRepository
	publisher ports.EventPublisher
	metrics   *observability.Metrics
	logger    *zap.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

// NewAuthService creates a new auth service
func NewAuthService(
	provider ports.CredentialsProvider,
	sessions *auth.SessionManager,
	users ports.UserRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		provider:  provider,
		sessions:  sessions,
		users:     users,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Login verifies the pair and issues a session. Missing fields are rejected
// before the credentials provider is consulted.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		s.metrics.LoginAttempt("rejected")
		return nil, pkgerrors.NewValidationError("email and password are required")
	}

	user, err := s.provider.Authenticate(ctx, email, in.Password)
	if err != nil {
		if pkgerrors.IsUnauthorized(err) {
			s.metrics.LoginAttempt("invalid")
		} else {
			s.metrics.LoginAttempt("error")
		}
		return nil, err
	}

	token, expiresAt, err := s.sessions.Issue(user.ID, user.Email, user.Name, []string{string(user.Role)})
	if err != nil {
		s.metrics.LoginAttempt("error")
		return nil, pkgerrors.NewInternalError("failed to issue session").WithCause(err)
	}

	s.metrics.LoginAttempt("success")
	s.logger.Info("User signed in",
		zap.String("userID", user.ID),
		zap.String("role", string(user.Role)),
		zap.String("mode", s.provider.Mode()),
	)
	if s.publisher != nil {
		event := events.NewUserSignedIn(user.ID, user.Email, s.provider.Mode(), time.Now().UTC())
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish sign-in event", zap.Error(err))
		}
	}

	return &ports.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// VerifyToken validates a session token and returns its claims.
func (s *AuthService) VerifyToken(_ context.Context, token string) (*auth.Claims, error) {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingToken):
			return nil, pkgerrors.NewValidationError("token is required")
		case errors.Is(err, auth.ErrExpiredToken):
			return nil, pkgerrors.NewUnauthorizedError("token has expired").WithCode("TOKEN_EXPIRED")
		default:
			return nil, pkgerrors.NewUnauthorizedError("invalid token").WithCode("INVALID_TOKEN")
		}
	}
	return claims, nil
}

// GetUser looks a user up by email. The password hash never leaves this layer
// because catalog.User does not serialize it.
func (s *AuthService) GetUser(ctx context.Context, email string) (*catalog.User, error) {
	email = catalog.NormalizeEmail(email)
	if email == "" {
		return nil, pkgerrors.NewValidationError("email is required")
	}
	user, found, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	return user, nil
}
