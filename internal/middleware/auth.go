package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/highway/highway/internal/auth"
	"github.com/highway/highway/internal/metrics"
	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/token"
)

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger  *slog.Logger
	Tokens  *token.Service
	Metrics metrics.Recorder
}

// RequireAuth returns a middleware that authenticates requests.
// A missing Authorization header is rejected with 401; a header whose
// bearer token fails verification (bad signature or expired) with 403.
// On success the decoded identity is injected into the request context.
func RequireAuth(cfg AuthConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				recorder.IncAuthFailure("missing_token")
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_token"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeMessage(w, http.StatusUnauthorized, "UnAuthorized access")
				return
			}

			raw := strings.TrimPrefix(header, "Bearer ")

			claims, err := cfg.Tokens.Verify(raw)
			if err != nil {
				recorder.IncAuthFailure("invalid_token")
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "invalid_token"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeMessage(w, http.StatusForbidden, "Forbidden access")
				return
			}

			recorder.IncAuthSuccess()

			ctx := auth.ContextWithIdentity(r.Context(), &model.Identity{Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeMessage writes a JSON message body with the given status.
// The message strings are part of the public API contract.
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
