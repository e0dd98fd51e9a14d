// Package memory provides in-memory store implementations.
// Each collection preserves insertion order as its default iteration order
// and is guarded by a mutex, since handlers run on concurrent goroutines.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/store"
)

// New returns a store.Stores backed entirely by in-process memory.
func New() *store.Stores {
	return &store.Stores{
		Users:          &UserStore{},
		Trips:          &TripStore{},
		Itineraries:    &ItineraryStore{},
		Accommodations: &AccommodationStore{},
		Expenses:       &ExpenseStore{},
		Contacts:       &ContactStore{},
	}
}

// UserStore is the in-memory store.UserStore implementation.
type UserStore struct {
	mu    sync.Mutex
	users []*model.User
}

func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return store.ErrEmailExists
		}
	}

	cp := *user
	s.users = append(s.users, &cp)
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) Update(ctx context.Context, id string, upd store.UserUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID != id {
			continue
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Contact != nil {
			u.Contact = *upd.Contact
		}
		cp := *u
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) List(ctx context.Context) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

// TripStore is the in-memory store.TripStore implementation.
type TripStore struct {
	mu    sync.Mutex
	trips []*model.Trip
}

func (s *TripStore) Create(ctx context.Context, trip *model.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *trip
	s.trips = append(s.trips, &cp)
	return nil
}

func (s *TripStore) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trips {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *TripStore) ListByUser(ctx context.Context, userID string) ([]*model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Trip, 0)
	for _, t := range s.trips {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sortTripsNewestFirst(out)
	return out, nil
}

func (s *TripStore) ListAll(ctx context.Context) ([]*model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		cp := *t
		out = append(out, &cp)
	}
	sortTripsNewestFirst(out)
	return out, nil
}

func (s *TripStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.trips)), nil
}

func (s *TripStore) UpdateFields(ctx context.Context, id string, upd store.TripUpdate) (*model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trips {
		if t.ID != id {
			continue
		}
		applyTripUpdate(t, upd)
		cp := *t
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (s *TripStore) Delete(ctx context.Context, id string) (*model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.trips {
		if t.ID == id {
			s.trips = append(s.trips[:i], s.trips[i+1:]...)
			return t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *TripStore) TopDestinations(ctx context.Context, n int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, t := range s.trips {
		if counts[t.Destination] == 0 {
			order = append(order, t.Destination)
		}
		counts[t.Destination]++
	}

	// Stable: ties keep first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order, nil
}

func applyTripUpdate(t *model.Trip, upd store.TripUpdate) {
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Destination != nil {
		t.Destination = *upd.Destination
	}
	if upd.StartDate != nil {
		t.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		t.EndDate = *upd.EndDate
	}
	if upd.TotalBudget != nil {
		t.TotalBudget = *upd.TotalBudget
	}
	if upd.Notes != nil {
		t.Notes = *upd.Notes
	}
}

func sortTripsNewestFirst(trips []*model.Trip) {
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
}

// ItineraryStore is the in-memory store.ItineraryStore implementation.
type ItineraryStore struct {
	mu      sync.Mutex
	entries []*model.ItineraryEntry
}

func (s *ItineraryStore) Create(ctx context.Context, entry *model.ItineraryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *entry
	s.entries = append(s.entries, &cp)
	return nil
}

func (s *ItineraryStore) ListByTrip(ctx context.Context, tripID string) ([]*model.ItineraryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.ItineraryEntry, 0)
	for _, e := range s.entries {
		if e.TripID == tripID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *ItineraryStore) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	var removed int64
	for _, e := range s.entries {
		if e.TripID == tripID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed, nil
}

// AccommodationStore is the in-memory store.AccommodationStore implementation.
type AccommodationStore struct {
	mu       sync.Mutex
	bookings []*model.AccommodationBooking
}

func (s *AccommodationStore) Create(ctx context.Context, booking *model.AccommodationBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *booking
	s.bookings = append(s.bookings, &cp)
	return nil
}

func (s *AccommodationStore) ListByTrip(ctx context.Context, tripID string) ([]*model.AccommodationBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.AccommodationBooking, 0)
	for _, b := range s.bookings {
		if b.TripID == tripID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *AccommodationStore) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bookings[:0]
	var removed int64
	for _, b := range s.bookings {
		if b.TripID == tripID {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	s.bookings = kept
	return removed, nil
}

// ExpenseStore is the in-memory store.ExpenseStore implementation.
type ExpenseStore struct {
	mu       sync.Mutex
	expenses []*model.Expense
}

func (s *ExpenseStore) Create(ctx context.Context, expense *model.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *expense
	s.expenses = append(s.expenses, &cp)
	return nil
}

func (s *ExpenseStore) ListByTrip(ctx context.Context, tripID string) ([]*model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Expense, 0)
	for _, e := range s.expenses {
		if e.TripID == tripID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *ExpenseStore) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.expenses[:0]
	var removed int64
	for _, e := range s.expenses {
		if e.TripID == tripID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.expenses = kept
	return removed, nil
}

// ContactStore is the in-memory store.ContactStore implementation.
type ContactStore struct {
	mu       sync.Mutex
	messages []*model.ContactMessage
}

func (s *ContactStore) Append(ctx context.Context, msg *model.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	cp := *msg
	s.messages = append(s.messages, &cp)
	return nil
}

func (s *ContactStore) List(ctx context.Context) ([]*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.ContactMessage, 0, len(s.messages))
	for _, m := range s.messages {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}
