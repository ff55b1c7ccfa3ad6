package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yamdb/internal/dto/request"
	"yamdb/internal/dto/response"
	"yamdb/internal/usecase"
	serviceMocks "yamdb/internal/usecase/mocks"
	"yamdb/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func asUser(r *http.Request, id uuid.UUID, role string, isAdmin bool) *http.Request {
	return r.WithContext(utils.SetUserContext(r.Context(), id, role, isAdmin))
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := new(serviceMocks.MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	t.Run("success", func(t *testing.T) {
		svc.On("Signup", mock.Anything, &request.SignupRequest{Email: "a@example.com", Username: "alice"}).
			Return(&response.SignupResponse{Email: "a@example.com", Username: "alice"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(`{"email":"a@example.com","username":"alice"}`))
		rec := httptest.NewRecorder()
		h.Signup(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.True(t, body.Status)
		assert.JSONEq(t, `{"email":"a@example.com","username":"alice"}`, string(body.Data))
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		h.Signup(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("field errors", func(t *testing.T) {
		svc.On("Signup", mock.Anything, mock.Anything).
			Return(nil, &usecase.ValidationError{Fields: map[string]string{"username": "taken"}}).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(`{"email":"b@example.com","username":"alice"}`))
		rec := httptest.NewRecorder()
		h.Signup(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "taken", decodeEnvelope(t, rec).Errors["username"])
	})

	svc.AssertExpectations(t)
}

func TestAuthHandler_Token(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown user", err: fmt.Errorf("user %w", usecase.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "bad code", err: usecase.ErrInvalidCode, wantStatus: http.StatusBadRequest},
		{name: "database down", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(serviceMocks.MockAuthService)
			svc.On("Token", mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewAuthHandler(svc, zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(`{"username":"alice","confirmation_code":"1"}`))
			rec := httptest.NewRecorder()
			h.Token(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.False(t, body.Status)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "connection refused")
			}
		})
	}
}

func TestTitleHandler_GetTitles(t *testing.T) {
	svc := new(serviceMocks.MockTitleService)
	router := chi.NewRouter()
	router.Get("/api/v1/titles", NewTitleHandler(svc, zap.NewNop()).GetTitles)

	t.Run("filters and pagination links", func(t *testing.T) {
		page := response.NewPaginatedResponse([]response.TitleResponse{{Name: "Arrival", Year: 2016}}, 2, 5, 11)
		svc.On("GetAllTitles", mock.Anything,
			mock.MatchedBy(func(f *request.TitleFilterRequest) bool {
				return f.Genre == "drama" && f.Category == "" && f.Year != nil && *f.Year == 2016
			}),
			mock.MatchedBy(func(p *request.PaginatedRequest) bool {
				return p.Page == 2 && p.PageSize == 5
			}),
		).Return(page, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/titles?genre=drama&year=2016&page=2&page_size=5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var data response.PaginatedResponse[response.TitleResponse]
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
		assert.Equal(t, int64(11), data.Count)
		require.NotNil(t, data.Next)
		assert.Contains(t, *data.Next, "page=3")
		assert.Contains(t, *data.Next, "genre=drama")
		require.NotNil(t, data.Previous)
		assert.Contains(t, *data.Previous, "page=1")
		svc.AssertExpectations(t)
	})

	t.Run("year must be a number", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/titles?year=abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Errors, "year")
	})
}

func TestTitleHandler_GetTitle(t *testing.T) {
	svc := new(serviceMocks.MockTitleService)
	router := chi.NewRouter()
	router.Get("/api/v1/titles/{title_id}", NewTitleHandler(svc, zap.NewNop()).GetTitle)

	t.Run("malformed id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/titles/42", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("null rating is rendered", func(t *testing.T) {
		id := uuid.New()
		svc.On("GetTitle", mock.Anything, id).Return(&response.TitleResponse{
			ID: id.String(), Name: "Arrival", Year: 2016, Genre: []response.SlugResponse{},
		}, nil).Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/titles/"+id.String(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var data map[string]any
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
		assert.Contains(t, data, "rating")
		assert.Nil(t, data["rating"])
		assert.Nil(t, data["category"])
	})
}

func TestReviewHandler_UpdateReview(t *testing.T) {
	titleID, reviewID, moderatorID := uuid.New(), uuid.New(), uuid.New()
	path := fmt.Sprintf("/api/v1/titles/%s/reviews/%s", titleID, reviewID)

	t.Run("moderator actor is passed to the service", func(t *testing.T) {
		svc := new(serviceMocks.MockReviewService)
		router := chi.NewRouter()
		router.Patch("/api/v1/titles/{title_id}/reviews/{review_id}", NewReviewHandler(svc, zap.NewNop()).UpdateReview)

		svc.On("UpdateReview", mock.Anything,
			usecase.Actor{ID: moderatorID, Role: "moderator", IsModerator: true},
			titleID, reviewID,
			mock.MatchedBy(func(req *request.UpdateReviewRequest) bool {
				return req.Score != nil && *req.Score == 2 && req.Text == nil
			}),
		).Return(&response.ReviewResponse{ID: reviewID.String(), Score: 2}, nil)

		req := asUser(httptest.NewRequest(http.MethodPatch, path, strings.NewReader(`{"score":2}`)), moderatorID, "moderator", false)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc := new(serviceMocks.MockReviewService)
		router := chi.NewRouter()
		router.Patch("/api/v1/titles/{title_id}/reviews/{review_id}", NewReviewHandler(svc, zap.NewNop()).UpdateReview)
		svc.On("UpdateReview", mock.Anything, mock.Anything, titleID, reviewID, mock.Anything).Return(nil, usecase.ErrForbidden)

		req := asUser(httptest.NewRequest(http.MethodPatch, path, strings.NewReader(`{"score":2}`)), uuid.New(), "user", false)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := new(serviceMocks.MockReviewService)
		router := chi.NewRouter()
		router.Patch("/api/v1/titles/{title_id}/reviews/{review_id}", NewReviewHandler(svc, zap.NewNop()).UpdateReview)
		svc.On("UpdateReview", mock.Anything, usecase.Actor{}, titleID, reviewID, mock.Anything).Return(nil, usecase.ErrUnauthenticated)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, path, strings.NewReader(`{"score":2}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	svc := new(serviceMocks.MockCategoryService)
	router := chi.NewRouter()
	router.Delete("/api/v1/categories/{slug}", NewCategoryHandler(svc, zap.NewNop()).DeleteCategory)

	svc.On("DeleteCategory", mock.Anything, "movie").Return(nil).Once()
	svc.On("DeleteCategory", mock.Anything, "ghost").Return(fmt.Errorf("category %w", usecase.ErrNotFound)).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/categories/movie", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/categories/ghost", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category not found", decodeEnvelope(t, rec).Message)
}

func TestUserHandler_UpdateMe(t *testing.T) {
	svc := new(serviceMocks.MockUserService)
	h := NewUserHandler(svc, zap.NewNop())
	userID := uuid.New()

	t.Run("anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.UpdateMe(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/users/me", strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("profile update", func(t *testing.T) {
		svc.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(req *request.UpdateUserRequest) bool {
			return req.Bio != nil && *req.Bio == "hi"
		})).Return(&response.UserResponse{Username: "alice", Bio: "hi", Role: "user"}, nil).Once()

		req := asUser(httptest.NewRequest(http.MethodPatch, "/api/v1/users/me", strings.NewReader(`{"bio":"hi","role":"admin"}`)), userID, "user", false)
		rec := httptest.NewRecorder()
		h.UpdateMe(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestCommentHandler_CreateComment(t *testing.T) {
	svc := new(serviceMocks.MockCommentService)
	router := chi.NewRouter()
	router.Post("/api/v1/titles/{title_id}/reviews/{review_id}/comments", NewCommentHandler(svc, zap.NewNop()).CreateComment)

	titleID, reviewID, authorID := uuid.New(), uuid.New(), uuid.New()
	svc.On("CreateComment", mock.Anything, usecase.Actor{ID: authorID, Role: "user"}, titleID, reviewID,
		&request.CommentRequest{Text: "Agreed"}).
		Return(&response.CommentResponse{ID: uuid.NewString(), Text: "Agreed", Author: "alice"}, nil)

	path := fmt.Sprintf("/api/v1/titles/%s/reviews/%s/comments", titleID, reviewID)
	req := asUser(httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"text":"Agreed"}`)), authorID, "user", false)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/titles/x/reviews/y/comments", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
