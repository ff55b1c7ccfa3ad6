package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yamdb/internal/data/entity"
	repoMocks "yamdb/internal/data/repository/mocks"
	"yamdb/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type seen struct {
	called  bool
	userID  uuid.UUID
	role    string
	isAdmin bool
}

func recordingHandler(s *seen) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, _ = utils.GetUserIDFromContext(r.Context())
		s.role, _ = utils.GetRoleFromContext(r.Context())
		s.isAdmin = utils.IsAdminFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	moderator := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Username:     "mod",
		Role:         entity.RoleModerator,
		IsActive:     true,
	}
	token, _, err := tokens.Issue(moderator.ID)
	require.NoError(t, err)

	deletedToken, _, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	users := new(repoMocks.MockUserRepository)
	users.On("FindByID", mock.Anything, moderator.ID).Return(moderator, nil)
	users.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantRole   string
	}{
		{name: "anonymous", header: "", wantStatus: http.StatusOK},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK, wantRole: "moderator"},
		{name: "lower case scheme", header: "bearer " + token, wantStatus: http.StatusOK, wantRole: "moderator"},
		{name: "wrong scheme", header: "Token " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
		{name: "user gone", header: "Bearer " + deletedToken, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s seen
			h := Authenticate(tokens, users, zap.NewNop())(recordingHandler(&s))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/titles", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, s.called)
			assert.Equal(t, tt.wantRole, s.role)
			if tt.wantRole != "" {
				assert.Equal(t, moderator.ID, s.userID)
				assert.False(t, s.isAdmin)
			}
		})
	}
}

func TestAdminOrReadOnly(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		method     string
		role       string
		isAdmin    bool
		anonymous  bool
		wantStatus int
	}{
		{name: "anonymous read", method: http.MethodGet, anonymous: true, wantStatus: http.StatusOK},
		{name: "anonymous write", method: http.MethodPost, anonymous: true, wantStatus: http.StatusUnauthorized},
		{name: "user write", method: http.MethodPost, role: "user", wantStatus: http.StatusForbidden},
		{name: "moderator delete", method: http.MethodDelete, role: "moderator", wantStatus: http.StatusForbidden},
		{name: "admin write", method: http.MethodPatch, role: "admin", isAdmin: true, wantStatus: http.StatusOK},
		{name: "superuser with user role", method: http.MethodDelete, role: "user", isAdmin: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s seen
			h := AdminOrReadOnly(zap.NewNop())(recordingHandler(&s))

			req := httptest.NewRequest(tt.method, "/api/v1/genres", nil)
			if !tt.anonymous {
				req = req.WithContext(utils.SetUserContext(req.Context(), userID, tt.role, tt.isAdmin))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAuthAndAdmin(t *testing.T) {
	var s seen
	anonymous := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)

	rec := httptest.NewRecorder()
	RequireAuth()(recordingHandler(&s)).ServeHTTP(rec, anonymous)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	user := anonymous.WithContext(utils.SetUserContext(anonymous.Context(), uuid.New(), "user", false))

	rec = httptest.NewRecorder()
	RequireAuth()(recordingHandler(&s)).ServeHTTP(rec, user)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	Admin(zap.NewNop())(recordingHandler(&s)).ServeHTTP(rec, user)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
