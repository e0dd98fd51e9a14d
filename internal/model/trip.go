package model

import "time"

// Trip is the top-level planning unit, owned by a single user.
//
// TotalBudget is the user-entered advisory figure set at creation or update.
// It is never derived from the trip's itinerary, accommodation or expense
// records; the computed counterpart lives in Budget.TotalBudget.
type Trip struct {
	ID          string    `json:"tripId"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	TotalBudget float64   `json:"totalBudget"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Budget is the computed cost breakdown for one trip, recomputed on
// every request from the live collections.
type Budget struct {
	ActivitiesTotal    float64 `json:"activitiesTotal"`
	AccommodationTotal float64 `json:"accommodationTotal"`
	ExpensesTotal      float64 `json:"expensesTotal"`
	TotalBudget        float64 `json:"totalBudget"`
}
