package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/service"
	"github.com/tripforge/tripforge/internal/store/memory"
)

func TestAdminStats(t *testing.T) {
	stores := memory.New()
	ctx := context.Background()

	for _, u := range []string{"u1", "u2"} {
		if err := stores.Users.Create(ctx, &model.User{ID: u, Email: u + "@example.com"}); err != nil {
			t.Fatalf("Create user: %v", err)
		}
	}
	for i, d := range []string{"Paris", "Paris", "Rome"} {
		trip := &model.Trip{
			ID:          fmt.Sprintf("t%d", i),
			UserID:      "u1",
			Destination: d,
			CreatedAt:   time.Now().UTC(),
		}
		if err := stores.Trips.Create(ctx, trip); err != nil {
			t.Fatalf("Create trip: %v", err)
		}
	}

	h := NewAdminHandler(service.NewAdminService(stores.Users, stores.Trips), testLogger())

	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	stats := decodeJSON[service.Stats](t, rec)
	if stats.TotalUsers != 2 {
		t.Errorf("TotalUsers = %d, want 2", stats.TotalUsers)
	}
	if stats.TotalTrips != 3 {
		t.Errorf("TotalTrips = %d, want 3", stats.TotalTrips)
	}
	if len(stats.CommonDestinations) == 0 || stats.CommonDestinations[0] != "Paris" {
		t.Errorf("CommonDestinations = %v, want Paris first", stats.CommonDestinations)
	}
}

func TestAdminListUsersHidesPasswordHash(t *testing.T) {
	stores := memory.New()
	ctx := context.Background()

	if err := stores.Users.Create(ctx, &model.User{
		ID: "u1", Email: "ada@example.com", PasswordHash: "super-secret-hash",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	h := NewAdminHandler(service.NewAdminService(stores.Users, stores.Trips), testLogger())

	rec := httptest.NewRecorder()
	h.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "super-secret-hash") {
		t.Errorf("password hash leaked: %s", rec.Body.String())
	}
}
