package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tripforge/tripforge/internal/auth"
	"github.com/tripforge/tripforge/internal/handler/dto"
	"github.com/tripforge/tripforge/internal/middleware"
	"github.com/tripforge/tripforge/internal/service"
)

// TripHandler serves trip CRUD, the embedded detail view, and the budget
// breakdown.
type TripHandler struct {
	trips  *service.TripService
	logger *slog.Logger
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(trips *service.TripService, logger *slog.Logger) *TripHandler {
	return &TripHandler{trips: trips, logger: logger}
}

// Create creates a trip owned by the authenticated user.
// POST /api/trips
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	fields := requireFields(map[string]string{
		"title":       req.Title,
		"destination": req.Destination,
		"startDate":   req.StartDate,
		"endDate":     req.EndDate,
	})
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		writeValidationError(w, []dto.FieldError{{Field: "startDate", Message: "must be an RFC 3339 or YYYY-MM-DD date"}})
		return
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		writeValidationError(w, []dto.FieldError{{Field: "endDate", Message: "must be an RFC 3339 or YYYY-MM-DD date"}})
		return
	}

	trip, err := h.trips.CreateTrip(r.Context(), service.CreateTripInput{
		UserID:      auth.MustUserIDFromContext(r.Context()),
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		TotalBudget: req.TotalBudget,
		Notes:       req.Notes,
	})
	if err != nil {
		respondTripError(w, r, h.logger, err, "create trip")
		return
	}

	writeJSON(w, http.StatusCreated, trip)
}

// ListByUser returns the authenticated user's trips, newest first. The
// path parameter is accepted for URL compatibility but the result is always
// scoped to the caller.
// GET /api/trips/user/{userId}
func (h *TripHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())

	trips, err := h.trips.ListUserTrips(r.Context(), userID)
	if err != nil {
		respondTripError(w, r, h.logger, err, "list trips")
		return
	}

	writeJSON(w, http.StatusOK, trips)
}

// Get returns one trip with its itinerary and accommodation embedded.
// GET /api/trips/{id}
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.trips.GetTripDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondTripError(w, r, h.logger, err, "get trip")
		return
	}

	writeJSON(w, http.StatusOK, dto.TripDetailResponse{
		Trip:          *detail.Trip,
		Itinerary:     detail.Itinerary,
		Accommodation: detail.Accommodation,
	})
}

// Update applies a partial update to a trip.
// PUT /api/trips/{id}
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	input := service.UpdateTripInput{
		Title:       req.Title,
		Destination: req.Destination,
		TotalBudget: req.TotalBudget,
		Notes:       req.Notes,
	}
	if req.StartDate != nil {
		start, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			writeValidationError(w, []dto.FieldError{{Field: "startDate", Message: "must be an RFC 3339 or YYYY-MM-DD date"}})
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := dto.ParseDate(*req.EndDate)
		if err != nil {
			writeValidationError(w, []dto.FieldError{{Field: "endDate", Message: "must be an RFC 3339 or YYYY-MM-DD date"}})
			return
		}
		input.EndDate = &end
	}

	trip, err := h.trips.UpdateTrip(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondTripError(w, r, h.logger, err, "update trip")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// Delete removes a trip and all of its dependent records.
// DELETE /api/trips/{id}
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.trips.DeleteTrip(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondTripError(w, r, h.logger, err, "delete trip")
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Trip deleted successfully"})
}

// Budget returns the trip's cost breakdown, computed fresh per request.
// GET /api/trips/{id}/budget
func (h *TripHandler) Budget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// A budget for a missing trip would be all zeros; resolve the trip
	// first so absent IDs 404 instead.
	if _, err := h.trips.GetTrip(r.Context(), id); err != nil {
		respondTripError(w, r, h.logger, err, "get trip")
		return
	}

	budget, err := h.trips.Budget(r.Context(), id)
	if err != nil {
		respondTripError(w, r, h.logger, err, "compute budget")
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

// respondTripError maps trip service errors onto HTTP responses. Shared by
// every handler that goes through the trip service.
func respondTripError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, op string) {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		writeError(w, http.StatusNotFound, "TRIP_NOT_FOUND", "trip not found")
	case errors.Is(err, service.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, "INVALID_DATE_RANGE", service.ErrInvalidDateRange.Error())
	default:
		logger.Error(op+" failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// parseOptionalDate is shared by the dependent-record handlers; a missing
// value yields the zero time.
func parseOptionalDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return dto.ParseDate(raw)
}
