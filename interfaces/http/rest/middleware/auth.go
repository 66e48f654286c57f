package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"catalog-admin/pkg/auth"
	"catalog-admin/pkg/common"
	pkgerrors "catalog-admin/pkg/errors"
)

// TokenVerifier validates a session token.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*auth.Claims, error)
}

// Authenticate requires a valid session token from the Authorization header or
// the session cookie and puts the caller into the request context.
func Authenticate(verifier TokenVerifier, cookieName string, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r, cookieName)
			if token == "" {
				respondWithError(w, http.StatusUnauthorized, common.StandardErrorCodes.Unauthorized, "Missing authentication token")
				return
			}

			claims, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				logger.Debug("Invalid token",
					zap.Error(err),
					zap.String("ip", ClientIP(r)),
					zap.String("path", r.URL.Path),
				)
				code, message := common.StandardErrorCodes.Unauthorized, "Invalid token"
				var appErr *pkgerrors.AppError
				if errors.As(err, &appErr) && appErr.Code != "" {
					code, message = appErr.Code, appErr.Message
				}
				respondWithError(w, http.StatusUnauthorized, code, message)
				return
			}

			userCtx := &auth.UserContext{
				UserID: claims.UserID,
				Email:  claims.Email,
				Name:   claims.Name,
				Roles:  claims.Roles,
			}
			next.ServeHTTP(w, r.WithContext(auth.SetUserInContext(r.Context(), userCtx)))
		})
	}
}

// Authorize checks the caller in ctx against roles. It returns an unauthorized
// error without a caller and a forbidden error when no role matches.
func Authorize(ctx context.Context, roles ...string) error {
	user, err := auth.GetUserFromContext(ctx)
	if err != nil {
		return pkgerrors.NewUnauthorizedError("Unauthorized")
	}
	if !user.HasAnyRole(roles...) {
		return pkgerrors.NewForbiddenError("Insufficient permissions")
	}
	return nil
}

// RequireRole creates middleware that requires one of roles
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := Authorize(r.Context(), roles...); err != nil {
				code := common.StandardErrorCodes.Unauthorized
				if pkgerrors.IsForbidden(err) {
					code = common.StandardErrorCodes.Forbidden
				}
				appErr := pkgerrors.GetAppError(err)
				respondWithError(w, appErr.HTTPStatus, code, appErr.Message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoleForWrites applies RequireRole to every method except GET and HEAD.
func RequireRoleForWrites(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		guarded := RequireRole(roles...)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			guarded.ServeHTTP(w, r)
		})
	}
}

// ExtractToken reads a bearer token, falling back to the session cookie.
func ExtractToken(r *http.Request, cookieName string) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return strings.TrimSpace(authHeader)
	}
	if cookieName != "" {
		if cookie, err := r.Cookie(cookieName); err == nil {
			return cookie.Value
		}
	}
	return ""
}

// ClientIP returns the caller address. chi's RealIP has already applied the
// forwarding headers to RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func respondWithError(w http.ResponseWriter, status int, code, message string) {
	_ = common.Write(w, status, common.Fail(code, message))
}
