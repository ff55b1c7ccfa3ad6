package adaptor

import (
	"errors"
	"net/http"

	"yamdb/internal/usecase"
	"yamdb/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors to HTTP statuses. Unknown errors are logged and hidden.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Debug(operation+" validation failed", zap.Any("fields", vErr.Fields))
		utils.ResponseBadRequest(w, r, "Validation failed", vErr.Fields)

	case errors.Is(err, usecase.ErrInvalidCode):
		log.Warn(operation+" failed - invalid confirmation code")
		utils.ResponseBadRequest(w, r, "Validation failed", map[string]string{
			"confirmation_code": "Invalid or expired confirmation code",
		})

	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, r, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrUnauthenticated):
		utils.ResponseUnauthorized(w, r, capitalize(usecase.ErrUnauthenticated.Error()))

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.String("path", r.URL.Path))
		utils.ResponseForbidden(w, r, capitalize(usecase.ErrForbidden.Error()))

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, r, "Internal server error")
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
