package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/service"
	"github.com/MKhiriev/go-blog-list/internal/utils"
	"github.com/MKhiriev/go-blog-list/models"
)

// login handles POST /api/login and answers with a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// an unreadable body is a login without credentials
	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Debug().Err(err).Msg("login body could not be decoded")
		writeError(w, r, service.ErrWrongCredentials)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Token:    token.String(),
		Username: user.Username,
		Name:     user.Name,
	}, http.StatusOK)
}
