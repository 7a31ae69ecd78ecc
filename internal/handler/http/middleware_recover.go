package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

// withRecover is the outermost stage of the request pipeline: it contains
// any panic escaping the rest of the chain, converts it into a 500
// response whose body carries the fault's message, and stops the fault
// from propagating further. It must never panic itself.
//
// If the downstream chain already started writing a response before
// panicking, the 500 status cannot be applied retroactively; the write
// below is then appended to whatever was sent. That inconsistency is a
// known sharp edge of measuring a response mid-fault.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Msg("panic recovered")

			message := fmt.Sprintf("Internal server error: %v", faultMessage(rec))
			_, _ = utils.WriteText(w, message, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

// faultMessage extracts a human-readable message from an arbitrary panic
// value.
func faultMessage(rec any) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", rec)
}
