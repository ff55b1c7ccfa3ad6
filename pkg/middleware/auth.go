package middleware

import (
	"net/http"
	"strings"

	"yamdb/internal/data/repository"
	"yamdb/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves an optional Bearer JWT. Without the header the request stays anonymous.
// A malformed or rejected token is answered with 401. The role is read from the database
// on every request so a role change applies to tokens already issued.
func Authenticate(tokens *utils.TokenManager, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				utils.ResponseUnauthorized(w, r, "Invalid token format. Use: Bearer <token>")
				return
			}
			token := strings.TrimSpace(parts[1])

			userID, err := tokens.Parse(token)
			if err != nil {
				logger.Debug("Token rejected", zap.Error(err))
				utils.ResponseUnauthorized(w, r, "Given token not valid for any token type")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load token user",
					zap.String("user_id", userID.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, r, "Internal server error")
				return
			}
			if user == nil || !user.IsActive {
				utils.ResponseUnauthorized(w, r, "User not found")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role), user.IsAdmin())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
				utils.ResponseUnauthorized(w, r, "Authentication credentials were not provided")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Admin allows only admins and superusers.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireAdmin(w, r, logger) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOrReadOnly lets safe methods through and requires an admin for the rest.
func AdminOrReadOnly(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isSafeMethod(r.Method) && !requireAdmin(w, r, logger) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requireAdmin(w http.ResponseWriter, r *http.Request, logger *zap.Logger) bool {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, r, "Authentication credentials were not provided")
		return false
	}

	if !utils.IsAdminFromContext(r.Context()) {
		logger.Warn("Admin check: non-admin access attempt",
			zap.String("user_id", userID.String()),
			zap.String("path", r.URL.Path))
		utils.ResponseForbidden(w, r, "You do not have permission to perform this action")
		return false
	}
	return true
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
