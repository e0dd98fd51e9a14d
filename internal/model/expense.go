package model

// Expense is an ad-hoc recorded cost against a trip, not tied to a
// specific activity or booking.
type Expense struct {
	ID       string  `json:"expenseId"`
	TripID   string  `json:"tripId"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note,omitempty"`
}
