package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/utils"
)

// auth attaches the caller's identity to the request context.
//
// Requests without an "Authorization" header, or with a scheme other than
// Bearer, pass through anonymously; handlers that need an identity reject
// them. A Bearer token that fails verification (bad signature, malformed,
// expired, empty) stops the request with 401 {"error":"Invalid token"}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("bearer token rejected")
			writeError(w, r, err)
			return
		}

		ctx = utils.WithIdentity(ctx, token.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
