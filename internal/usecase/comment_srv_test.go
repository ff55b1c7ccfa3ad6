package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"yamdb/internal/data/entity"
	"yamdb/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCommentService_CreateComment(t *testing.T) {
	ctx := context.Background()
	titleID, reviewID := uuid.New(), uuid.New()
	author := Actor{ID: uuid.New(), Role: string(entity.RoleUser)}

	t.Run("stored under the review", func(t *testing.T) {
		f := newReviewFixture()
		svc := NewCommentService(f.repo, zap.NewNop())

		f.reviews.On("FindByID", ctx, titleID, reviewID).Return(&entity.Review{ID: reviewID, TitleID: titleID}, nil)
		f.comments.On("Create", ctx, mock.MatchedBy(func(c *entity.Comment) bool {
			return c.ReviewID == reviewID && c.AuthorID == author.ID && c.Text == "Agreed"
		})).Return(nil)
		f.comments.On("FindByID", ctx, reviewID, mock.Anything).Return(&entity.Comment{
			ID: uuid.New(), ReviewID: reviewID, AuthorID: author.ID, Text: "Agreed",
			PubDate: time.Now(), AuthorUsername: "alice",
		}, nil)

		resp, err := svc.CreateComment(ctx, author, titleID, reviewID, &request.CommentRequest{Text: "Agreed"})
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Author)
		f.comments.AssertExpectations(t)
	})

	t.Run("review of another title", func(t *testing.T) {
		f := newReviewFixture()
		svc := NewCommentService(f.repo, zap.NewNop())

		f.reviews.On("FindByID", ctx, titleID, reviewID).Return(nil, nil)

		_, err := svc.CreateComment(ctx, author, titleID, reviewID, &request.CommentRequest{Text: "Agreed"})
		assert.ErrorIs(t, err, ErrNotFound)
		f.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty text", func(t *testing.T) {
		f := newReviewFixture()
		svc := NewCommentService(f.repo, zap.NewNop())

		_, err := svc.CreateComment(ctx, author, titleID, reviewID, &request.CommentRequest{})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "text")
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newReviewFixture()
		svc := NewCommentService(f.repo, zap.NewNop())

		_, err := svc.CreateComment(ctx, Actor{}, titleID, reviewID, &request.CommentRequest{Text: "x"})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctx := context.Background()
	titleID, reviewID, commentID := uuid.New(), uuid.New(), uuid.New()
	authorID := uuid.New()

	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"author", Actor{ID: authorID, Role: string(entity.RoleUser)}, nil},
		{"moderator", Actor{ID: uuid.New(), Role: string(entity.RoleModerator), IsModerator: true}, nil},
		{"admin", Actor{ID: uuid.New(), Role: string(entity.RoleAdmin), IsAdmin: true}, nil},
		{"someone else", Actor{ID: uuid.New(), Role: string(entity.RoleUser)}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReviewFixture()
			svc := NewCommentService(f.repo, zap.NewNop())

			f.reviews.On("FindByID", ctx, titleID, reviewID).Return(&entity.Review{ID: reviewID, TitleID: titleID}, nil)
			f.comments.On("FindByID", ctx, reviewID, commentID).
				Return(&entity.Comment{ID: commentID, ReviewID: reviewID, AuthorID: authorID}, nil)
			f.comments.On("Delete", ctx, commentID).Return(nil)

			err := svc.DeleteComment(ctx, tt.actor, titleID, reviewID, commentID)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				f.comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			f.comments.AssertCalled(t, "Delete", ctx, commentID)
		})
	}

	t.Run("review of another title", func(t *testing.T) {
		f := newReviewFixture()
		svc := NewCommentService(f.repo, zap.NewNop())
		other := uuid.New()
		f.reviews.On("FindByID", ctx, other, reviewID).Return(nil, nil)

		err := svc.DeleteComment(ctx, Actor{ID: authorID}, other, reviewID, commentID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCommentService_GetReviewComments(t *testing.T) {
	ctx := context.Background()
	titleID, reviewID := uuid.New(), uuid.New()

	f := newReviewFixture()
	svc := NewCommentService(f.repo, zap.NewNop())

	f.reviews.On("FindByID", ctx, titleID, reviewID).Return(&entity.Review{ID: reviewID, TitleID: titleID}, nil)
	f.comments.On("FindByReviewID", ctx, reviewID, 2, 2).Return([]*entity.Comment{
		{ID: uuid.New(), ReviewID: reviewID, Text: "third", AuthorUsername: "bob"},
	}, nil)
	f.comments.On("CountByReviewID", ctx, reviewID).Return(int64(3), nil)

	page, err := svc.GetReviewComments(ctx, titleID, reviewID, &request.PaginatedRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "third", page.Results[0].Text)
	assert.Equal(t, 2, page.TotalPages())
}

func TestCommentService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture()
	titleID, reviewID, commentID := uuid.New(), uuid.New(), uuid.New()
	moderator := Actor{ID: uuid.New(), Role: "moderator", IsModerator: true}

	f.reviews.On("FindByID", ctx, titleID, reviewID).Return(&entity.Review{ID: reviewID, TitleID: titleID}, nil)
	f.comments.On("FindByID", ctx, reviewID, commentID).Return(&entity.Comment{
		ID: commentID, ReviewID: reviewID, AuthorID: uuid.New(), Text: "spam", AuthorUsername: "bob",
	}, nil)
	f.comments.On("Update", ctx, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.Text == "[removed]"
	})).Return(nil)

	svc := NewCommentService(f.repo, zap.NewNop())
	resp, err := svc.UpdateComment(ctx, moderator, titleID, reviewID, commentID, &request.CommentRequest{Text: "[removed]"})
	require.NoError(t, err)
	assert.Equal(t, "[removed]", resp.Text)
	assert.Equal(t, "bob", resp.Author)

	_, err = svc.UpdateComment(ctx, moderator, titleID, reviewID, commentID, &request.CommentRequest{})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCommentService_UpdateCommentChecksPermissionBeforeBody(t *testing.T) {
	ctx := context.Background()
	titleID, reviewID, commentID := uuid.New(), uuid.New(), uuid.New()
	f := newReviewFixture()
	svc := NewCommentService(f.repo, zap.NewNop())

	f.reviews.On("FindByID", ctx, titleID, reviewID).Return(&entity.Review{ID: reviewID, TitleID: titleID}, nil)
	f.comments.On("FindByID", ctx, reviewID, commentID).
		Return(&entity.Comment{ID: commentID, ReviewID: reviewID, AuthorID: uuid.New()}, nil)

	stranger := Actor{ID: uuid.New(), Role: string(entity.RoleUser)}
	_, err := svc.UpdateComment(ctx, stranger, titleID, reviewID, commentID, &request.CommentRequest{})
	assert.ErrorIs(t, err, ErrForbidden)
	f.comments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
