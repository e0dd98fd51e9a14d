package model

import "time"

// ItineraryEntry is a planned activity within a trip, with its own cost.
type ItineraryEntry struct {
	ID            string    `json:"itineraryId"`
	TripID        string    `json:"tripId"`
	Day           int       `json:"day"`
	Activity      string    `json:"activity"`
	Location      string    `json:"location"`
	Date          time.Time `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	EstimatedCost float64   `json:"estimatedCost"`
	Notes         string    `json:"notes,omitempty"`
}
