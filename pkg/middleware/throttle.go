package middleware

import (
	"net"
	"net/http"

	"yamdb/pkg/ratelimit"
	"yamdb/pkg/utils"

	"go.uber.org/zap"
)

// Throttle limits requests per client. The key is the user id when authenticated, else the client IP.
// A limiter failure lets the request through.
func Throttle(limiter ratelimit.Limiter, scope string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + clientKey(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Error("Throttle check failed", zap.String("key", key), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Warn("Request throttled", zap.String("key", key), zap.String("path", r.URL.Path))
				utils.ResponseTooManyRequests(w, r, "Request was throttled")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return "user:" + userID.String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
