package wire

import (
	"yamdb/internal/adaptor"
	"yamdb/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireTitle mounts titles and the review and comment trees below them.
// Title writes are admin only; review and comment writes need any authenticated user
// and the service decides who may change what.
func wireTitle(
	r chi.Router,
	titleHandler *adaptor.TitleHandler,
	reviewHandler *adaptor.ReviewHandler,
	commentHandler *adaptor.CommentHandler,
	log *zap.Logger,
) {
	r.Route("/titles", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOrReadOnly(log))

			r.Get("/", titleHandler.GetTitles)
			r.Post("/", titleHandler.CreateTitle)
			r.Get("/{title_id}", titleHandler.GetTitle)
			r.Patch("/{title_id}", titleHandler.UpdateTitle)
			r.Delete("/{title_id}", titleHandler.DeleteTitle)
		})

		r.Route("/{title_id}/reviews", func(r chi.Router) {
			wireReview(r, reviewHandler)

			r.Route("/{review_id}/comments", func(r chi.Router) {
				wireComment(r, commentHandler)
			})
		})
	})
}
