package adaptor

import (
	"net/http"
	"net/url"

	"yamdb/internal/data/entity"
	"yamdb/internal/dto/request"
	"yamdb/internal/usecase"
	"yamdb/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// actorFromContext builds the caller from values set by the auth middleware.
func actorFromContext(r *http.Request) usecase.Actor {
	ctx := r.Context()
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return usecase.Actor{}
	}

	role, _ := utils.GetRoleFromContext(ctx)
	return usecase.Actor{
		ID:          userID,
		Role:        role,
		IsAdmin:     utils.IsAdminFromContext(ctx),
		IsModerator: role == string(entity.RoleModerator),
	}
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("page_size"), request.DefaultPageSize),
	}
	req.Normalize()
	return req
}

// uuidParam reads a path id. A malformed id cannot match any row, so callers answer 404.
func uuidParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// absoluteURL rebuilds the public request URL for pagination links.
func absoluteURL(r *http.Request) *url.URL {
	u := *r.URL
	u.Host = r.Host
	u.Scheme = "http"
	if r.TLS != nil {
		u.Scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		u.Scheme = proto
	}
	return &u
}
