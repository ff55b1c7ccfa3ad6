package adaptor

import (
	"net/http"

	"yamdb/internal/dto/request"
	"yamdb/internal/usecase"
	"yamdb/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// GetReviewComments handles GET /api/v1/titles/{title_id}/reviews/{review_id}/comments (public)
func (h *CommentHandler) GetReviewComments(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewIDs(w, r)
	if !ok {
		return
	}

	comments, err := h.service.GetReviewComments(r.Context(), titleID, reviewID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, r, h.log, err, "get review comments")
		return
	}

	comments.SetLinks(absoluteURL(r))
	utils.ResponseSuccess(w, r, "success", comments)
}

// GetComment handles GET .../comments/{comment_id} (public)
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, ok := commentIDs(w, r)
	if !ok {
		return
	}

	comment, err := h.service.GetComment(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get comment")
		return
	}

	utils.ResponseSuccess(w, r, "success", comment)
}

// CreateComment handles POST .../comments (protected)
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewIDs(w, r)
	if !ok {
		return
	}

	var req request.CommentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), actorFromContext(r), titleID, reviewID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create comment")
		return
	}

	utils.ResponseCreated(w, r, "Comment created", comment)
}

// UpdateComment handles PATCH .../comments/{comment_id} (author, moderator or admin)
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, ok := commentIDs(w, r)
	if !ok {
		return
	}

	var req request.CommentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return
	}

	comment, err := h.service.UpdateComment(r.Context(), actorFromContext(r), titleID, reviewID, commentID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "update comment")
		return
	}

	utils.ResponseSuccess(w, r, "Comment updated", comment)
}

// DeleteComment handles DELETE .../comments/{comment_id} (author, moderator or admin)
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, ok := commentIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteComment(r.Context(), actorFromContext(r), titleID, reviewID, commentID); err != nil {
		handleServiceError(w, r, h.log, err, "delete comment")
		return
	}

	utils.ResponseNoContent(w, r)
}

func reviewIDs(w http.ResponseWriter, r *http.Request) (titleID, reviewID uuid.UUID, ok bool) {
	if titleID, ok = uuidParam(r, "title_id"); ok {
		reviewID, ok = uuidParam(r, "review_id")
	}
	if !ok {
		utils.ResponseNotFound(w, r, "Review not found")
	}
	return titleID, reviewID, ok
}

func commentIDs(w http.ResponseWriter, r *http.Request) (titleID, reviewID, commentID uuid.UUID, ok bool) {
	if titleID, reviewID, ok = reviewIDs(w, r); !ok {
		return titleID, reviewID, commentID, false
	}
	if commentID, ok = uuidParam(r, "comment_id"); !ok {
		utils.ResponseNotFound(w, r, "Comment not found")
	}
	return titleID, reviewID, commentID, ok
}
