// Package dto defines request and response shapes for the HTTP API.
package dto

import (
	"time"

	"github.com/tripforge/tripforge/internal/model"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError reports a validation failure for one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Contact  string `json:"contact"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned from register and login.
type AuthResponse struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// CreateTripRequest is the body of POST /api/trips.
type CreateTripRequest struct {
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	TotalBudget float64 `json:"totalBudget"`
	Notes       string  `json:"notes"`
}

// UpdateTripRequest is the body of PUT /api/trips/{id}.
// Nil fields are left unchanged.
type UpdateTripRequest struct {
	Title       *string  `json:"title"`
	Destination *string  `json:"destination"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	TotalBudget *float64 `json:"totalBudget"`
	Notes       *string  `json:"notes"`
}

// TripDetailResponse embeds a trip's itinerary and accommodation, as
// served by GET /api/trips/{id}.
type TripDetailResponse struct {
	model.Trip
	Itinerary     []*model.ItineraryEntry       `json:"itinerary"`
	Accommodation []*model.AccommodationBooking `json:"accommodation"`
}

// CreateItineraryRequest is the body of POST /api/itinerary.
type CreateItineraryRequest struct {
	TripID        string  `json:"tripId"`
	Day           int     `json:"day"`
	Activity      string  `json:"activity"`
	Location      string  `json:"location"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	EstimatedCost float64 `json:"estimatedCost"`
	Notes         string  `json:"notes"`
}

// CreateAccommodationRequest is the body of POST /api/accommodation.
type CreateAccommodationRequest struct {
	TripID       string  `json:"tripId"`
	HotelName    string  `json:"hotelName"`
	Address      string  `json:"address"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	CostPerNight float64 `json:"costPerNight"`
}

// CreateExpenseRequest is the body of POST /api/expenses.
type CreateExpenseRequest struct {
	TripID   string  `json:"tripId"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
}

// SuggestRequest is the body of POST /api/ai/itinerary-suggest.
type SuggestRequest struct {
	Destination string          `json:"destination"`
	Dates       model.DateRange `json:"dates"`
	Preferences string          `json:"preferences"`
}

// SuggestResponse wraps the suggestion list.
type SuggestResponse struct {
	Suggestions []model.Suggestion `json:"suggestions"`
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MessageResponse is a simple confirmation envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ParseDate accepts the date formats clients send: RFC 3339 timestamps or
// plain YYYY-MM-DD dates.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
