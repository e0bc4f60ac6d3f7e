package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/highway/highway/internal/auth"
	"github.com/highway/highway/internal/metrics"
	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/store"
)

// RoleStore looks up user accounts for role checks.
type RoleStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// RoleCache caches role lookups in front of the store.
// A nil cache disables caching.
type RoleCache interface {
	GetRole(ctx context.Context, email string) (string, bool, error)
	SetRole(ctx context.Context, email, role string) error
}

// AdminConfig holds configuration for the admin-gating middleware.
type AdminConfig struct {
	Logger  *slog.Logger
	Store   RoleStore
	Cache   RoleCache
	Metrics metrics.Recorder
}

// RequireAdmin returns middleware that grants access only when the
// authenticated identity's account carries the admin role. An identity
// with no account at all is treated the same as a non-admin and gets
// 403; store failures surface as 500. Must be applied after RequireAuth.
func RequireAdmin(cfg AdminConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
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

			role, ok, err := lookupRole(r.Context(), cfg, identity.Email)
			if err != nil {
				cfg.Logger.Error("role lookup failed during admin check",
					slog.String("email", identity.Email),
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeMessage(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if !ok || role != model.RoleAdmin {
				recorder.IncAuthFailure("not_admin")
				cfg.Logger.Warn("admin check failed",
					slog.String("email", identity.Email),
					slog.Bool("account_exists", ok),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeMessage(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// lookupRole resolves the role for an email, preferring the cache.
// The second return value reports whether an account exists.
func lookupRole(ctx context.Context, cfg AdminConfig, email string) (string, bool, error) {
	if cfg.Cache != nil {
		if role, hit, err := cfg.Cache.GetRole(ctx, email); err == nil && hit {
			return role, true, nil
		}
	}

	user, err := cfg.Store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// No account for a verified token. Deliberately mapped to
			// a plain forbidden outcome rather than a distinct error.
			return "", false, nil
		}
		return "", false, err
	}

	if cfg.Cache != nil {
		_ = cfg.Cache.SetRole(ctx, email, user.Role)
	}

	return user.Role, true, nil
}
