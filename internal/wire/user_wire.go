package wire

import (
	"yamdb/internal/adaptor"
	"yamdb/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	log *zap.Logger,
) {
	r.Route("/users", func(r chi.Router) {
		// Own profile. Registered before {username} and closed for DELETE so
		// that "me" is never treated as a username.
		r.With(middleware.RequireAuth()).Get("/me", userHandler.GetMe)
		r.With(middleware.RequireAuth()).Patch("/me", userHandler.UpdateMe)
		r.Delete("/me", methodNotAllowed)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin(log))

			r.Get("/", userHandler.GetAllUsers)
			r.Post("/", userHandler.CreateUser)
			r.Get("/{username}", userHandler.GetUser)
			r.Patch("/{username}", userHandler.UpdateUser)
			r.Delete("/{username}", userHandler.DeleteUser)
		})
	})
}
