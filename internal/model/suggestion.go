package model

// Suggestion is a single AI-generated (or fallback) itinerary idea.
// Suggestions are never persisted.
type Suggestion struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Date          string  `json:"date"`
	EstimatedCost float64 `json:"estimatedCost"`
}

// DateRange bounds a suggestion request.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
