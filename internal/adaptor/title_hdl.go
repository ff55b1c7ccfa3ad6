package adaptor

import (
	"net/http"
	"strconv"

	"yamdb/internal/dto/request"
	"yamdb/internal/usecase"
	"yamdb/pkg/utils"

	"go.uber.org/zap"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// GetTitles handles GET /api/v1/titles (public)
// Query filters: category and genre match slug substrings, name and year are exact.
func (h *TitleHandler) GetTitles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &request.TitleFilterRequest{
		Category: query.Get("category"),
		Genre:    query.Get("genre"),
		Name:     query.Get("name"),
	}

	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			utils.ResponseBadRequest(w, r, "Validation failed", map[string]string{"year": "Enter a whole number"})
			return
		}
		filter.Year = &year
	}

	titles, err := h.service.GetAllTitles(r.Context(), filter, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, r, h.log, err, "get titles")
		return
	}

	titles.SetLinks(absoluteURL(r))
	utils.ResponseSuccess(w, r, "success", titles)
}

// GetTitle handles GET /api/v1/titles/{title_id} (public)
func (h *TitleHandler) GetTitle(w http.ResponseWriter, r *http.Request) {
	titleID, ok := uuidParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, r, "Title not found")
		return
	}

	title, err := h.service.GetTitle(r.Context(), titleID)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get title")
		return
	}

	utils.ResponseSuccess(w, r, "success", title)
}

// CreateTitle handles POST /api/v1/titles (admin only)
func (h *TitleHandler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTitleRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return
	}

	title, err := h.service.CreateTitle(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "create title")
		return
	}

	utils.ResponseCreated(w, r, "Title created", title)
}

// UpdateTitle handles PATCH /api/v1/titles/{title_id} (admin only)
func (h *TitleHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	titleID, ok := uuidParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, r, "Title not found")
		return
	}

	var req request.UpdateTitleRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return
	}

	title, err := h.service.UpdateTitle(r.Context(), titleID, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "update title")
		return
	}

	utils.ResponseSuccess(w, r, "Title updated", title)
}

// DeleteTitle handles DELETE /api/v1/titles/{title_id} (admin only)
func (h *TitleHandler) DeleteTitle(w http.ResponseWriter, r *http.Request) {
	titleID, ok := uuidParam(r, "title_id")
	if !ok {
		utils.ResponseNotFound(w, r, "Title not found")
		return
	}

	if err := h.service.DeleteTitle(r.Context(), titleID); err != nil {
		handleServiceError(w, r, h.log, err, "delete title")
		return
	}

	utils.ResponseNoContent(w, r)
}
