// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Auth metrics
	IncUserRegistered()
	IncLogin(status string) // status: "success" or "failure"

	// Trip management metrics
	IncTripCreated()
	IncTripUpdated()
	IncTripDeleted()

	// Budget aggregation metrics
	IncBudgetComputed()
	ObserveBudgetDuration(duration time.Duration)

	// Suggestion provider metrics
	IncSuggestionServed(source string) // source: "provider" or "fallback"

	// Contact sink metrics
	IncContactSubmitted()
	IncContactMail(status string) // status: "sent", "failed", "disabled"
}
