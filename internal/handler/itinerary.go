package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripforge/tripforge/internal/handler/dto"
	"github.com/tripforge/tripforge/internal/service"
)

// ItineraryHandler serves the per-trip activity schedule.
type ItineraryHandler struct {
	trips  *service.TripService
	logger *slog.Logger
}

// NewItineraryHandler creates an ItineraryHandler.
func NewItineraryHandler(trips *service.TripService, logger *slog.Logger) *ItineraryHandler {
	return &ItineraryHandler{trips: trips, logger: logger}
}

// Create adds an activity to a trip's itinerary.
// POST /api/itinerary
func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if fields := requireFields(map[string]string{
		"tripId":   req.TripID,
		"activity": req.Activity,
	}); len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	if _, err := h.trips.GetTrip(r.Context(), req.TripID); err != nil {
		respondTripError(w, r, h.logger, err, "get trip")
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		writeValidationError(w, []dto.FieldError{{Field: "date", Message: "must be an RFC 3339 or YYYY-MM-DD date"}})
		return
	}

	entry, err := h.trips.CreateItineraryEntry(r.Context(), service.CreateItineraryInput{
		TripID:        req.TripID,
		Day:           req.Day,
		Activity:      req.Activity,
		Location:      req.Location,
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		EstimatedCost: req.EstimatedCost,
		Notes:         req.Notes,
	})
	if err != nil {
		respondTripError(w, r, h.logger, err, "create itinerary entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// ListByTrip returns a trip's itinerary entries in insertion order.
// GET /api/itinerary/trip/{tripId}
func (h *ItineraryHandler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	entries, err := h.trips.ListItinerary(r.Context(), chi.URLParam(r, "tripId"))
	if err != nil {
		respondTripError(w, r, h.logger, err, "list itinerary")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
