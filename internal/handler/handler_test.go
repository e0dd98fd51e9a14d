package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tripforge/tripforge/internal/auth"
	"github.com/tripforge/tripforge/internal/service"
	"github.com/tripforge/tripforge/internal/store"
	"github.com/tripforge/tripforge/internal/store/memory"
)

const testUserID = "test-user-id"

// fakeHasher keeps handler tests free of argon2 work.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "h:" + plaintext, nil }

func (fakeHasher) Verify(plaintext, credential string) (bool, error) {
	return credential == "h:"+plaintext, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// identity injects a fixed caller, standing in for the auth middleware.
func identity(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUserID(r.Context(), userID)))
		})
	}
}

type testEnv struct {
	router *chi.Mux
	stores *store.Stores
	trips  *service.TripService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := testLogger()
	stores := memory.New()
	tokens := auth.NewTokenCodec("test-secret", time.Hour)

	authService := service.NewAuthService(stores.Users, fakeHasher{}, tokens, nil, nil)
	tripService := service.NewTripService(stores, nil)
	suggestionService := service.NewSuggestionService(nil, logger, nil)
	contactService := service.NewContactService(stores.Contacts, nil, logger, nil)

	authHandler := NewAuthHandler(authService, logger)
	tripHandler := NewTripHandler(tripService, logger)
	itineraryHandler := NewItineraryHandler(tripService, logger)
	accommodationHandler := NewAccommodationHandler(tripService, logger)
	expenseHandler := NewExpenseHandler(tripService, logger)
	suggestHandler := NewSuggestHandler(suggestionService, logger)
	contactHandler := NewContactHandler(contactService, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/contact", contactHandler.Submit)

		r.Group(func(r chi.Router) {
			r.Use(identity(testUserID))

			r.Route("/trips", func(r chi.Router) {
				r.Post("/", tripHandler.Create)
				r.Get("/user/{userId}", tripHandler.ListByUser)
				r.Get("/{id}", tripHandler.Get)
				r.Put("/{id}", tripHandler.Update)
				r.Delete("/{id}", tripHandler.Delete)
				r.Get("/{id}/budget", tripHandler.Budget)
			})
			r.Post("/itinerary", itineraryHandler.Create)
			r.Get("/itinerary/trip/{tripId}", itineraryHandler.ListByTrip)
			r.Post("/accommodation", accommodationHandler.Create)
			r.Get("/accommodation/trip/{tripId}", accommodationHandler.ListByTrip)
			r.Post("/expenses", expenseHandler.Create)
			r.Get("/expenses/trip/{tripId}", expenseHandler.ListByTrip)
			r.Post("/ai/itinerary-suggest", suggestHandler.Suggest)
		})
	})

	return &testEnv{router: r, stores: stores, trips: tripService}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
	return out
}

func (e *testEnv) seedTrip(t *testing.T) string {
	t.Helper()
	trip, err := e.trips.CreateTrip(context.Background(), service.CreateTripInput{
		UserID:      testUserID,
		Title:       "Seed Trip",
		Destination: "Porto",
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return trip.ID
}
