package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tripforge/tripforge/internal/handler/dto"
	"github.com/tripforge/tripforge/internal/service"
)

// SuggestHandler serves itinerary suggestions.
type SuggestHandler struct {
	suggestions *service.SuggestionService
	logger      *slog.Logger
}

// NewSuggestHandler creates a SuggestHandler.
func NewSuggestHandler(suggestions *service.SuggestionService, logger *slog.Logger) *SuggestHandler {
	return &SuggestHandler{suggestions: suggestions, logger: logger}
}

// Suggest returns activity suggestions for a destination. Provider outages
// degrade to the generic fallback set, so this endpoint only fails on bad
// input.
// POST /api/ai/itinerary-suggest
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if fields := requireFields(map[string]string{
		"destination": req.Destination,
	}); len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	suggestions := h.suggestions.Suggest(r.Context(), req.Destination, req.Dates, req.Preferences)

	writeJSON(w, http.StatusOK, dto.SuggestResponse{Suggestions: suggestions})
}
