package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yamdb/internal/data/entity"
	"yamdb/internal/data/repository"
	"yamdb/internal/dto/request"
	"yamdb/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const duplicateReviewMessage = "You have already reviewed this title"

type ReviewService interface {
	GetTitleReviews(ctx context.Context, titleID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, actor Actor, titleID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, actor Actor, titleID, reviewID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, actor Actor, titleID, reviewID uuid.UUID) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetTitleReviews(ctx context.Context, titleID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	req.Normalize()

	if err := s.ensureTitle(ctx, titleID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, titleID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get title reviews: %w", err)
	}
	total, err := s.repo.Review.CountByTitleID(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("count title reviews: %w", err)
	}

	results := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		results[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(results, req.Page, req.PageSize, total), nil
}

func (s *reviewService) GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*response.ReviewResponse, error) {
	review, err := s.find(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// CreateReview allows one review per author and title.
func (s *reviewService) CreateReview(ctx context.Context, actor Actor, titleID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := s.ensureTitle(ctx, titleID); err != nil {
		return nil, err
	}

	existing, err := s.repo.Review.FindByTitleAndAuthor(ctx, titleID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, newValidationError("non_field_errors", duplicateReviewMessage)
	}

	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  titleID,
		AuthorID: actor.ID,
		Text:     req.Text,
		Score:    req.Score,
		PubDate:  time.Now(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newValidationError("non_field_errors", duplicateReviewMessage)
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("title_id", titleID.String()),
		zap.Int("score", review.Score),
	)
	s.logRating(ctx, titleID)

	return s.GetReview(ctx, titleID, review.ID)
}

func (s *reviewService) UpdateReview(ctx context.Context, actor Actor, titleID, reviewID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthenticated
	}
	review, err := s.find(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(review.AuthorID) {
		return nil, ErrForbidden
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if req.Score != nil {
		s.logRating(ctx, titleID)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, actor Actor, titleID, reviewID uuid.UUID) error {
	if !actor.Authenticated() {
		return ErrUnauthenticated
	}

	review, err := s.find(ctx, titleID, reviewID)
	if err != nil {
		return err
	}
	if !actor.CanModify(review.AuthorID) {
		return ErrForbidden
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.logRating(ctx, titleID)
	return nil
}

func (s *reviewService) ensureTitle(ctx context.Context, titleID uuid.UUID) error {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return notFound("title")
	}
	return nil
}

func (s *reviewService) find(ctx context.Context, titleID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := s.repo.Review.FindByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, notFound("review")
	}
	return review, nil
}

// logRating records the title's new mean score. Failures are not fatal.
func (s *reviewService) logRating(ctx context.Context, titleID uuid.UUID) {
	rating, count, err := s.repo.Review.GetTitleScoreStats(ctx, titleID)
	if err != nil {
		s.log.Warn("Failed to read title rating",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return
	}

	fields := []zap.Field{
		zap.String("title_id", titleID.String()),
		zap.Int64("reviews", count),
	}
	if rating != nil {
		fields = append(fields, zap.Float64("rating", *rating))
	}
	s.log.Debug("Title rating updated", fields...)
}
