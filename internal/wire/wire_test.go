package wire

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yamdb/internal/adaptor"
	"yamdb/internal/data/entity"
	"yamdb/internal/data/repository"
	repoMocks "yamdb/internal/data/repository/mocks"
	"yamdb/internal/dto/request"
	"yamdb/internal/dto/response"
	"yamdb/internal/usecase"
	"yamdb/internal/usecase/mocks"
	"yamdb/pkg/middleware"
	"yamdb/pkg/ratelimit"
	"yamdb/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type routerFixture struct {
	router     *chi.Mux
	db         pgxmock.PgxPoolIface
	users      *repoMocks.MockUserRepository
	auth       *mocks.MockAuthService
	categories *mocks.MockCategoryService
	tokens     *utils.TokenManager
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	f := &routerFixture{
		db:         db,
		users:      new(repoMocks.MockUserRepository),
		auth:       new(mocks.MockAuthService),
		categories: new(mocks.MockCategoryService),
		tokens:     utils.NewTokenManager("test-secret", time.Hour),
	}

	log := zap.NewNop()
	service := &usecase.Service{
		Auth:     f.auth,
		User:     new(mocks.MockUserService),
		Category: f.categories,
		Genre:    new(mocks.MockGenreService),
		Title:    new(mocks.MockTitleService),
		Review:   new(mocks.MockReviewService),
		Comment:  new(mocks.MockCommentService),
	}

	registry := prometheus.NewRegistry()
	metrics, err := middleware.NewMetrics(registry)
	require.NoError(t, err)

	deps := Deps{
		DB:       db,
		Repo:     &repository.Repository{User: f.users},
		Tokens:   f.tokens,
		Limiter:  ratelimit.NewMemoryLimiter(1, 1, time.Hour),
		Registry: registry,
	}
	config := &utils.Config{}

	f.router = setupRouter(adaptor.NewHandler(service, log), deps, metrics, config, log)
	return f
}

func (f *routerFixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *routerFixture) adminToken(t *testing.T) string {
	t.Helper()

	admin := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Username:     "root",
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	f.users.On("FindByID", mock.Anything, admin.ID).Return(admin, nil)

	token, _, err := f.tokens.Issue(admin.ID)
	require.NoError(t, err)
	return token
}

func TestHealth(t *testing.T) {
	f := newRouterFixture(t)

	f.db.ExpectPing()
	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	f.db.ExpectPing().WillReturnError(errors.New("connection refused"))
	rec = f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestRouter_MethodsAndMissingRoutes(t *testing.T) {
	f := newRouterFixture(t)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"put is not offered for users", http.MethodPut, "/api/v1/users/bob", http.StatusMethodNotAllowed},
		{"own profile cannot be deleted", http.MethodDelete, "/api/v1/users/me", http.StatusMethodNotAllowed},
		{"categories have no detail view", http.MethodGet, "/api/v1/categories/books", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/api/v1/nothing-here", http.StatusNotFound},
		{"anonymous profile", http.MethodGet, "/api/v1/users/me", http.StatusUnauthorized},
		{"anonymous user list", http.MethodGet, "/api/v1/users", http.StatusUnauthorized},
		{"anonymous category create", http.MethodPost, "/api/v1/categories", http.StatusUnauthorized},
		{"anonymous review create", http.MethodPost, "/api/v1/titles/" + uuid.NewString() + "/reviews", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(tt.method, tt.target, "", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_Categories(t *testing.T) {
	f := newRouterFixture(t)
	token := f.adminToken(t)

	page := response.NewPaginatedResponse([]response.SlugResponse{{Name: "Books", Slug: "books"}}, 1, 10, 1)
	f.categories.On("GetAllCategories", mock.Anything, "bo", mock.AnythingOfType("*request.PaginatedRequest")).
		Return(page, nil)
	f.categories.On("CreateCategory", mock.Anything, &request.CategoryRequest{Name: "Films", Slug: "films"}).
		Return(&response.SlugResponse{Name: "Films", Slug: "films"}, nil)

	rec := f.do(http.MethodGet, "/api/v1/categories/?search=bo", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Count   int64                   `json:"count"`
			Results []response.SlugResponse `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(1), body.Data.Count)
	assert.Equal(t, "books", body.Data.Results[0].Slug)

	rec = f.do(http.MethodPost, "/api/v1/categories", `{"name":"Films","slug":"films"}`, token)
	assert.Equal(t, http.StatusCreated, rec.Code)

	f.categories.AssertExpectations(t)
}

func TestRouter_AuthIsThrottled(t *testing.T) {
	f := newRouterFixture(t)

	f.auth.On("Signup", mock.Anything, mock.AnythingOfType("*request.SignupRequest")).
		Return(&response.SignupResponse{Email: "a@example.com", Username: "alice"}, nil).Once()

	body := `{"email":"a@example.com","username":"alice"}`
	rec := f.do(http.MethodPost, "/api/v1/auth/signup", body, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/auth/token", `{"username":"alice","confirmation_code":"x"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	f.auth.AssertExpectations(t)
}

func TestRouter_DocsAndMetrics(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"host": "example.com"`)
	assert.Contains(t, rec.Body.String(), `"/titles/{title_id}/reviews/{review_id}/comments"`)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc["basePath"])

	for _, page := range []string{"/swagger", "/redoc/"} {
		rec = f.do(http.MethodGet, page, "", "")
		assert.Equal(t, http.StatusOK, rec.Code, page)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	}

	rec = f.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/swagger/doc.json",status="200"} 1`)
}
