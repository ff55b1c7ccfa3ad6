package wire

import (
	"yamdb/internal/adaptor"
	"yamdb/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler, log *zap.Logger) {
	r.Route("/genres", func(r chi.Router) {
		r.Use(middleware.AdminOrReadOnly(log))

		r.Get("/", genreHandler.GetGenres)
		r.Post("/", genreHandler.CreateGenre)
		r.Delete("/{slug}", genreHandler.DeleteGenre)
	})
}
