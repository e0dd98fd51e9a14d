package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tripforge/tripforge/internal/auth"
	"github.com/tripforge/tripforge/internal/store"
)

// RequireAdmin returns middleware that restricts a route to admin users.
// Must be applied after Auth. Authorization failures are 403, distinct
// from the 401 the auth gate produces.
func RequireAdmin(users store.UserStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := auth.UserIDFromContext(r.Context())
			if userID == "" {
				writeAuthError(w)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if !errors.Is(err, store.ErrNotFound) {
					logger.Error("admin check failed",
						slog.String("error", err.Error()),
						slog.String("request_id", GetRequestID(r.Context())),
					)
				}
				writeAdminError(w)
				return
			}

			if !user.IsAdmin {
				logger.Warn("admin access denied",
					slog.String("user_id", userID),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAdminError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeAdminError writes a 403 Forbidden response.
func writeAdminError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"Admin access required","code":"FORBIDDEN"}`))
}
