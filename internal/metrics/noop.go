package metrics

import "time"

// NoopRecorder discards all metric events.
type NoopRecorder struct{}

// NewNoop creates a Recorder that does nothing.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) IncUserRegistered() {}
func (n *NoopRecorder) IncLogin(status string) {}
func (n *NoopRecorder) IncTripCreated() {}
func (n *NoopRecorder) IncTripUpdated() {}
func (n *NoopRecorder) IncTripDeleted() {}
func (n *NoopRecorder) IncBudgetComputed() {}
func (n *NoopRecorder) ObserveBudgetDuration(duration time.Duration) {}
func (n *NoopRecorder) IncSuggestionServed(source string) {}
func (n *NoopRecorder) IncContactSubmitted() {}
func (n *NoopRecorder) IncContactMail(status string) {}
