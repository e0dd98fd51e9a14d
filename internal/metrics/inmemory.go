package metrics

import (
	"sync"
	"time"
)

// InMemoryRecorder keeps counters in process memory.
// Useful for tests and for the /readyz-style debug snapshot.
type InMemoryRecorder struct {
	mu sync.Mutex

	usersRegistered   int64
	logins            map[string]int64
	tripsCreated      int64
	tripsUpdated      int64
	tripsDeleted      int64
	budgetsComputed   int64
	budgetDurations   []time.Duration
	suggestions       map[string]int64
	contactsSubmitted int64
	contactMail       map[string]int64
}

// NewInMemory creates an in-memory Recorder.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		logins:      make(map[string]int64),
		suggestions: make(map[string]int64),
		contactMail: make(map[string]int64),
	}
}

func (r *InMemoryRecorder) IncUserRegistered() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.usersRegistered++
}

func (r *InMemoryRecorder) IncLogin(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logins[status]++
}

func (r *InMemoryRecorder) IncTripCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tripsCreated++
}

func (r *InMemoryRecorder) IncTripUpdated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tripsUpdated++
}

func (r *InMemoryRecorder) IncTripDeleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tripsDeleted++
}

func (r *InMemoryRecorder) IncBudgetComputed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.budgetsComputed++
}

func (r *InMemoryRecorder) ObserveBudgetDuration(duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.budgetDurations = append(r.budgetDurations, duration)
}

func (r *InMemoryRecorder) IncSuggestionServed(source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suggestions[source]++
}

func (r *InMemoryRecorder) IncContactSubmitted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contactsSubmitted++
}

func (r *InMemoryRecorder) IncContactMail(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contactMail[status]++
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	UsersRegistered   int64
	Logins            map[string]int64
	TripsCreated      int64
	TripsUpdated      int64
	TripsDeleted      int64
	BudgetsComputed   int64
	Suggestions       map[string]int64
	ContactsSubmitted int64
	ContactMail       map[string]int64
}

// Snapshot returns a copy of the current counters.
func (r *InMemoryRecorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot{
		UsersRegistered:   r.usersRegistered,
		Logins:            make(map[string]int64, len(r.logins)),
		TripsCreated:      r.tripsCreated,
		TripsUpdated:      r.tripsUpdated,
		TripsDeleted:      r.tripsDeleted,
		BudgetsComputed:   r.budgetsComputed,
		Suggestions:       make(map[string]int64, len(r.suggestions)),
		ContactsSubmitted: r.contactsSubmitted,
		ContactMail:       make(map[string]int64, len(r.contactMail)),
	}
	for k, v := range r.logins {
		s.Logins[k] = v
	}
	for k, v := range r.suggestions {
		s.Suggestions[k] = v
	}
	for k, v := range r.contactMail {
		s.ContactMail[k] = v
	}
	return s
}
