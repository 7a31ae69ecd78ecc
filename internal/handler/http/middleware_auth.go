package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

const authorizationHeader = "Authorization"

// withAuthGate is an HTTP middleware that enforces static bearer-token
// authentication on every request whose method is not GET.
//
// GET requests pass through untouched. For all other methods the incoming
// "Authorization" header must exactly equal "Bearer <token>" where <token>
// is the configuration-supplied shared secret. On absence or mismatch the
// chain short-circuits with HTTP 401 Unauthorized and the rest of the
// pipeline — including access logging and the endpoint itself — never runs.
//
// Rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) withAuthGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		token := r.Header.Get(authorizationHeader)
		if token != "Bearer "+h.authToken {
			logger.FromRequest(r).Err(ErrInvalidOrMissingToken).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Send()
			_, _ = utils.WriteText(w, unauthorizedBody, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
