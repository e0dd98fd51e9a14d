// Package store defines the persistence contracts for the application.
// Handlers and services depend only on these interfaces; one concrete
// implementation exists per backing store (memory for tests and
// database-less development, Postgres for production).
package store

import (
	"context"
	"errors"
	"time"

	"github.com/tripforge/tripforge/internal/model"
)

// Sentinel errors shared by all implementations. Lookups by a non-existent
// ID return ErrNotFound; they never panic. Callers decide the HTTP status.
var (
	ErrNotFound    = errors.New("not found")
	ErrEmailExists = errors.New("email already exists")
)

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Update applies a partial update (name, contact) and returns the
	// updated record, or ErrNotFound.
	Update(ctx context.Context, id string, upd UserUpdate) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Count(ctx context.Context) (int64, error)
}

// UserUpdate carries the mutable user fields; nil means "leave unchanged".
type UserUpdate struct {
	Name    *string
	Contact *string
}

// TripStore persists trips.
type TripStore interface {
	Create(ctx context.Context, trip *model.Trip) error
	GetByID(ctx context.Context, id string) (*model.Trip, error)
	// ListByUser returns the user's trips, newest first.
	ListByUser(ctx context.Context, userID string) ([]*model.Trip, error)
	// ListAll returns every trip, newest first (admin surface).
	ListAll(ctx context.Context) ([]*model.Trip, error)
	Count(ctx context.Context) (int64, error)
	// UpdateFields applies a partial update and returns the updated trip,
	// or ErrNotFound. Ownership (UserID) is never reassigned.
	UpdateFields(ctx context.Context, id string, upd TripUpdate) (*model.Trip, error)
	// Delete removes the trip and returns the removed record, or ErrNotFound.
	// Dependent itinerary, accommodation and expense records are the
	// caller's responsibility (see service.TripService.DeleteTrip).
	Delete(ctx context.Context, id string) (*model.Trip, error)
	// TopDestinations returns the n most common destinations, most
	// frequent first.
	TopDestinations(ctx context.Context, n int) ([]string, error)
}

// TripUpdate carries the mutable trip fields; nil means "leave unchanged".
type TripUpdate struct {
	Title       *string
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	TotalBudget *float64
	Notes       *string
}

// ItineraryStore persists itinerary entries.
type ItineraryStore interface {
	Create(ctx context.Context, entry *model.ItineraryEntry) error
	// ListByTrip returns entries for the trip in insertion order.
	ListByTrip(ctx context.Context, tripID string) ([]*model.ItineraryEntry, error)
	// DeleteByTrip removes all entries for the trip, returning the count.
	DeleteByTrip(ctx context.Context, tripID string) (int64, error)
}

// AccommodationStore persists accommodation bookings.
type AccommodationStore interface {
	Create(ctx context.Context, booking *model.AccommodationBooking) error
	ListByTrip(ctx context.Context, tripID string) ([]*model.AccommodationBooking, error)
	DeleteByTrip(ctx context.Context, tripID string) (int64, error)
}

// ExpenseStore persists expenses.
type ExpenseStore interface {
	Create(ctx context.Context, expense *model.Expense) error
	ListByTrip(ctx context.Context, tripID string) ([]*model.Expense, error)
	DeleteByTrip(ctx context.Context, tripID string) (int64, error)
}

// ContactStore is the append-only contact-message log.
type ContactStore interface {
	Append(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

// Stores bundles every entity store behind one injection point.
type Stores struct {
	Users          UserStore
	Trips          TripStore
	Itineraries    ItineraryStore
	Accommodations AccommodationStore
	Expenses       ExpenseStore
	Contacts       ContactStore
}
