package middleware

import (
	"net/http"

	"github.com/highway/highway/internal/auth"
	"github.com/highway/highway/internal/metrics"
)

// RequireOwnerMatch returns middleware that grants access only when the
// authenticated identity's email equals the email named by the given
// query parameter. The comparison is byte-exact: no case folding, no
// partial matches. Must be applied after RequireAuth.
func RequireOwnerMatch(param string, recorder metrics.Recorder) func(http.Handler) http.Handler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := auth.IdentityFromContext(r.Context())
			if identity == nil {
				recorder.IncAuthFailure("missing_token")
				writeMessage(w, http.StatusUnauthorized, "UnAuthorized access")
				return
			}

			requested := r.URL.Query().Get(param)
			if requested != identity.Email {
				recorder.IncAuthFailure("owner_mismatch")
				writeMessage(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
