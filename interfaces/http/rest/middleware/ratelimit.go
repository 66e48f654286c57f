package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"catalog-admin/pkg/auth"
	"catalog-admin/pkg/common"
	pkgerrors "catalog-admin/pkg/errors"
)

// RateLimit rejects callers that exceed limiter's budget with 429. Requests are keyed by client IP.
func RateLimit(limiter auth.RateLimiter, limit int, window string, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := ClientIP(r)

			allowed, err := limiter.Allow(r.Context(), clientIP)
			if err != nil {
				logger.Error("Rate limiter error", zap.Error(err))
				respondWithError(w, http.StatusInternalServerError, common.StandardErrorCodes.InternalError, "Internal server error")
				return
			}
			if !allowed {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", clientIP),
					zap.String("path", r.URL.Path),
				)
				appErr := pkgerrors.NewRateLimitError(limit, window)
				respondWithError(w, appErr.HTTPStatus, common.StandardErrorCodes.TooManyRequests, appErr.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
