package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/tripforge/tripforge/internal/handler/dto"
	"github.com/tripforge/tripforge/internal/model"
)

func TestSuggestServesFallback(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/ai/itinerary-suggest", dto.SuggestRequest{
		Destination: "Lisbon",
		Dates:       model.DateRange{Start: "2026-06-01", End: "2026-06-10"},
		Preferences: "food",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeJSON[dto.SuggestResponse](t, rec)
	if len(resp.Suggestions) == 0 {
		t.Fatal("expected fallback suggestions")
	}
	for _, s := range resp.Suggestions {
		if !strings.HasSuffix(s.Location, ", Lisbon") {
			t.Errorf("location %q not localized to destination", s.Location)
		}
	}
}

func TestSuggestRequiresDestination(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/ai/itinerary-suggest", dto.SuggestRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
