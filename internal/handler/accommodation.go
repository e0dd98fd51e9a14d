package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripforge/tripforge/internal/handler/dto"
	"github.com/tripforge/tripforge/internal/service"
)

// AccommodationHandler serves per-trip lodging bookings.
type AccommodationHandler struct {
	trips  *service.TripService
	logger *slog.Logger
}

// NewAccommodationHandler creates an AccommodationHandler.
func NewAccommodationHandler(trips *service.TripService, logger *slog.Logger) *AccommodationHandler {
	return &AccommodationHandler{trips: trips, logger: logger}
}

// Create adds an accommodation booking to a trip.
// POST /api/accommodation
func (h *AccommodationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if fields := requireFields(map[string]string{
		"tripId":       req.TripID,
		"hotelName":    req.HotelName,
		"checkInDate":  req.CheckInDate,
		"checkOutDate": req.CheckOutDate,
	}); len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	if _, err := h.trips.GetTrip(r.Context(), req.TripID); err != nil {
		respondTripError(w, r, h.logger, err, "get trip")
		return
	}

	checkIn, err := dto.ParseDate(req.CheckInDate)
	if err != nil {
		writeValidationError(w, []dto.FieldError{{Field: "checkInDate", Message: "must be an RFC 3339 or YYYY-MM-DD date"}})
		return
	}
	checkOut, err := dto.ParseDate(req.CheckOutDate)
	if err != nil {
		writeValidationError(w, []dto.FieldError{{Field: "checkOutDate", Message: "must be an RFC 3339 or YYYY-MM-DD date"}})
		return
	}

	booking, err := h.trips.CreateAccommodation(r.Context(), service.CreateAccommodationInput{
		TripID:       req.TripID,
		HotelName:    req.HotelName,
		Address:      req.Address,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		CostPerNight: req.CostPerNight,
	})
	if err != nil {
		respondTripError(w, r, h.logger, err, "create accommodation booking")
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

// ListByTrip returns a trip's bookings in insertion order.
// GET /api/accommodation/trip/{tripId}
func (h *AccommodationHandler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.trips.ListAccommodation(r.Context(), chi.URLParam(r, "tripId"))
	if err != nil {
		respondTripError(w, r, h.logger, err, "list accommodation")
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}
