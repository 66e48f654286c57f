package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"catalog-admin/pkg/common"
	pkgerrors "catalog-admin/pkg/errors"
)

const maxBodyBytes = 1 << 20

var codeByType = map[pkgerrors.ErrorType]string{
	pkgerrors.ErrorTypeValidation:   common.StandardErrorCodes.ValidationError,
	pkgerrors.ErrorTypeNotFound:     common.StandardErrorCodes.NotFound,
	pkgerrors.ErrorTypeConflict:     common.StandardErrorCodes.Conflict,
	pkgerrors.ErrorTypeUnauthorized: common.StandardErrorCodes.Unauthorized,
	pkgerrors.ErrorTypeForbidden:    common.StandardErrorCodes.Forbidden,
	pkgerrors.ErrorTypeRateLimit:    common.StandardErrorCodes.TooManyRequests,
	pkgerrors.ErrorTypeUnavailable:  common.StandardErrorCodes.ServiceUnavailable,
}

// respond writes the envelope and logs an encoding failure.
func respond(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, result common.Result) {
	if err := common.Write(w, status, result); err != nil {
		logger.Error("Failed to encode response",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

// respondError maps an error to a status and envelope. Client errors keep their
// message. Server errors are logged in full and answered with a generic message.
func respondError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("requestID", middleware.GetReqID(r.Context())),
		zap.Error(err),
	}

	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("Request timed out", fields...)
		respond(w, r, logger, http.StatusGatewayTimeout,
			common.Fail(common.StandardErrorCodes.ServiceUnavailable, "request timed out"))
		return
	}

	appErr := pkgerrors.GetAppError(err)
	if appErr == nil || appErr.HTTPStatus == 0 || appErr.HTTPStatus >= http.StatusInternalServerError {
		status := http.StatusInternalServerError
		code := common.StandardErrorCodes.InternalError
		message := "internal server error"
		if appErr != nil && appErr.Type == pkgerrors.ErrorTypeUnavailable {
			status = http.StatusServiceUnavailable
			code = common.StandardErrorCodes.ServiceUnavailable
			message = "service temporarily unavailable"
		}
		logger.Error("Request failed", fields...)
		respond(w, r, logger, status, common.Fail(code, message))
		return
	}

	code := appErr.Code
	if code == "" {
		code = codeByType[appErr.Type]
	}
	logger.Debug("Request rejected", fields...)
	respond(w, r, logger, appErr.HTTPStatus, common.Fail(code, appErr.Message))
}

// decode parses a JSON body. A malformed body is a validation error.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := common.ParseJSONBody(w, r, v, maxBodyBytes); err != nil {
		return pkgerrors.NewValidationError("invalid request body: " + err.Error()).WithCode(common.StandardErrorCodes.BadRequest)
	}
	return nil
}

// decodeLenient parses a body and ignores unknown fields. Updates may carry a full
// record (id, createdAt) and login forms may carry extra fields (csrfToken, callbackUrl).
func decodeLenient(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return pkgerrors.NewValidationError("invalid request body: " + err.Error()).WithCode(common.StandardErrorCodes.BadRequest)
	}
	return nil
}
