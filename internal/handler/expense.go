package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripforge/tripforge/internal/handler/dto"
	"github.com/tripforge/tripforge/internal/service"
)

// ExpenseHandler serves per-trip expense records.
type ExpenseHandler struct {
	trips  *service.TripService
	logger *slog.Logger
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(trips *service.TripService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{trips: trips, logger: logger}
}

// Create records an expense against a trip.
// POST /api/expenses
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	fields := requireFields(map[string]string{
		"tripId":   req.TripID,
		"category": req.Category,
	})
	if req.Amount < 0 {
		fields = append(fields, dto.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	if _, err := h.trips.GetTrip(r.Context(), req.TripID); err != nil {
		respondTripError(w, r, h.logger, err, "get trip")
		return
	}

	expense, err := h.trips.CreateExpense(r.Context(), service.CreateExpenseInput{
		TripID:   req.TripID,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		respondTripError(w, r, h.logger, err, "create expense")
		return
	}

	writeJSON(w, http.StatusCreated, expense)
}

// ListByTrip returns a trip's expenses in insertion order.
// GET /api/expenses/trip/{tripId}
func (h *ExpenseHandler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.trips.ListExpenses(r.Context(), chi.URLParam(r, "tripId"))
	if err != nil {
		respondTripError(w, r, h.logger, err, "list expenses")
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}
