package wire

import (
	"yamdb/internal/adaptor"
	"yamdb/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

// wireReview is mounted under /titles/{title_id}/reviews
func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// Public
	r.Get("/", reviewHandler.GetTitleReviews)
	r.Get("/{review_id}", reviewHandler.GetReview)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())

		r.Post("/", reviewHandler.CreateReview)
		r.Patch("/{review_id}", reviewHandler.UpdateReview)
		r.Delete("/{review_id}", reviewHandler.DeleteReview)
	})
}
