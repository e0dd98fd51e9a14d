package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	internalauth "github.com/tripforge/tripforge/internal/auth"
	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/store/memory"
)

func TestRequireAdmin(t *testing.T) {
	stores := memory.New()
	ctx := context.Background()

	if err := stores.Users.Create(ctx, &model.User{ID: "admin-1", Email: "root@example.com", IsAdmin: true}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := stores.Users.Create(ctx, &model.User{ID: "user-1", Email: "ada@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	handler := RequireAdmin(stores.Users, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		userID string
		want   int
	}{
		{"admin passes", "admin-1", http.StatusOK},
		{"non-admin forbidden", "user-1", http.StatusForbidden},
		{"unknown user forbidden", "ghost", http.StatusForbidden},
		{"unauthenticated rejected", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			if tt.userID != "" {
				req = req.WithContext(internalauth.ContextWithUserID(req.Context(), tt.userID))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
