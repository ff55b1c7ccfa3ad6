package adaptor

import (
	"net/http"

	"yamdb/internal/dto/request"
	"yamdb/internal/usecase"
	"yamdb/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetTitleReviews handles GET /api/v1/titles/{title_id}/reviews (public)
func (h *ReviewHandler) GetTitleReviews(w http.ResponseWriter, r *http.Request) {
	titleID, ok := uuidParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, r, "Title not found")
		return
	}

	reviews, err := h.service.GetTitleReviews(r.Context(), titleID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, r, h.log, err, "get title reviews")
		return
	}

	reviews.SetLinks(absoluteURL(r))
	utils.ResponseSuccess(w, r, "success", reviews)
}

// GetReview handles GET /api/v1/titles/{title_id}/reviews/{review_id} (public)
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewIDs(w, r)
	if !ok {
		return
	}

	review, err := h.service.GetReview(r.Context(), titleID, reviewID)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, r, "success", review)
}

// CreateReview handles POST /api/v1/titles/{title_id}/reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	titleID, ok := uuidParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, r, "Title not found")
		return
	}

	var req request.CreateReviewRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), actorFromContext(r), titleID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, r, "Review created", review)
}

// UpdateReview handles PATCH /api/v1/titles/{title_id}/reviews/{review_id} (author, moderator or admin)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewIDs(w, r)
	if !ok {
		return
	}

	var req request.UpdateReviewRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), actorFromContext(r), titleID, reviewID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, r, "Review updated", review)
}

// DeleteReview handles DELETE /api/v1/titles/{title_id}/reviews/{review_id} (author, moderator or admin)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), actorFromContext(r), titleID, reviewID); err != nil {
		handleServiceError(w, r, h.log, err, "delete review")
		return
	}

	utils.ResponseNoContent(w, r)
}
