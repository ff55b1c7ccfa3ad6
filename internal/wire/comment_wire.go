package wire

import (
	"yamdb/internal/adaptor"
	"yamdb/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

// wireComment is mounted under /titles/{title_id}/reviews/{review_id}/comments
func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler) {
	r.Get("/", commentHandler.GetReviewComments)
	r.Get("/{comment_id}", commentHandler.GetComment)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())

		r.Post("/", commentHandler.CreateComment)
		r.Patch("/{comment_id}", commentHandler.UpdateComment)
		r.Delete("/{comment_id}", commentHandler.DeleteComment)
	})
}
