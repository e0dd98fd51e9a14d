package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tripforge/tripforge/internal/auth"
)

// BypassPolicy skips token verification for designated path prefixes and
// assigns a fixed placeholder identity. It exists so tests and database-less
// development can exercise authenticated routes; it must never be enabled
// in a production deployment, which main enforces at startup.
type BypassPolicy struct {
	Enabled      bool
	PathPrefixes []string
	UserID       string
}

// Matches reports whether the policy bypasses verification for the path.
func (p BypassPolicy) Matches(path string) bool {
	if !p.Enabled {
		return false
	}
	for _, prefix := range p.PathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger *slog.Logger
	Tokens *auth.TokenCodec
	Bypass BypassPolicy
}

// Auth returns a middleware that authenticates requests from the
// Authorization header's bearer token. On success the caller's user ID is
// attached to the request context.
//
// Missing/malformed headers and failed verification are distinct causes
// logged with distinct reasons, but both map to 401 externally.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Bypass.Matches(r.URL.Path) {
				ctx := auth.ContextWithUserID(r.Context(), cfg.Bypass.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token, reason := extractBearerToken(r)
			if token == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", reason),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w)
				return
			}

			userID, err := cfg.Tokens.Verify(token)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, auth.ErrExpiredToken) {
					reason = "expired_token"
				}
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", reason),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w)
				return
			}

			ctx := auth.ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken pulls the token from "Authorization: Bearer <token>".
// Returns the token and, when empty, the failure reason.
func extractBearerToken(r *http.Request) (token, reason string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", "missing_token"
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", "malformed_header"
	}

	token = strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", "malformed_header"
	}
	return token, ""
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Invalid or missing token","code":"UNAUTHORIZED"}`))
}
