package wire

import (
	"yamdb/internal/adaptor"
	"yamdb/pkg/middleware"
	"yamdb/pkg/ratelimit"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth mounts the public signup flow. Both endpoints share one throttle scope.
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	limiter ratelimit.Limiter,
	log *zap.Logger,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.Throttle(limiter, "auth", log))

		r.Post("/signup", authHandler.Signup)
		r.Post("/token", authHandler.Token)
	})
}
