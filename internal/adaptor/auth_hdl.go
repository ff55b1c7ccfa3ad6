package adaptor

import (
	"net/http"

	"yamdb/internal/dto/request"
	"yamdb/internal/usecase"
	"yamdb/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /api/v1/auth/signup
//
//	@Summary	Register or re-request a confirmation code
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.SignupRequest	true	"Email and username"
//	@Success	200		{object}	response.SignupResponse
//	@Failure	400		{object}	utils.Response
//	@Router		/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "signup")
		return
	}

	utils.ResponseSuccess(w, r, "Confirmation code sent", resp)
}

// Token handles POST /api/v1/auth/token
//
//	@Summary	Exchange a confirmation code for a JWT
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.TokenRequest	true	"Username and confirmation code"
//	@Success	200		{object}	response.TokenResponse
//	@Failure	400		{object}	utils.Response
//	@Failure	404		{object}	utils.Response
//	@Router		/auth/token [post]
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Token(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "token")
		return
	}

	utils.ResponseSuccess(w, r, "success", resp)
}
