package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/utils"
	"github.com/MKhiriev/go-blog-list/models"
)

// registerUser handles POST /api/users.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

// listUsers handles GET /api/users.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
