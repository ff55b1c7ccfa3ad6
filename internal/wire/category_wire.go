package wire

import (
	"yamdb/internal/adaptor"
	"yamdb/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler, log *zap.Logger) {
	r.Route("/categories", func(r chi.Router) {
		r.Use(middleware.AdminOrReadOnly(log))

		r.Get("/", categoryHandler.GetCategories)
		r.Post("/", categoryHandler.CreateCategory)
		r.Delete("/{slug}", categoryHandler.DeleteCategory)
	})
}
