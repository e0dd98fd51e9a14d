package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/store"
	"github.com/tripforge/tripforge/internal/testutil"
)

// newTestRepository connects to the database named by DATABASE_URL, resets
// the schema and serializes against other DB tests. Skipped when no
// database is configured.
func newTestRepository(t *testing.T) (*Repository, *store.Stores) {
	t.Helper()

	databaseURL := testutil.RequireEnv(t, "DATABASE_URL")
	ctx := context.Background()

	repo, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire lock: %v", err)
	}
	t.Cleanup(func() {
		if err := unlock(); err != nil {
			t.Errorf("release lock: %v", err)
		}
	})

	if err := testutil.ResetAllSchemas(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schemas: %v", err)
	}

	return repo, repo.Stores()
}

func TestUserStoreIntegration(t *testing.T) {
	_, stores := newTestRepository(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, "ada@example.com")
	if err := stores.Users.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := testutil.NewTestUser(t, "ADA@example.com")
	if err := stores.Users.Create(ctx, dup); !errors.Is(err, store.ErrEmailExists) {
		t.Errorf("duplicate email: expected ErrEmailExists, got %v", err)
	}

	got, err := stores.Users.GetByEmail(ctx, "Ada@Example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("got user %q, want %q", got.ID, user.ID)
	}

	name := "Renamed"
	updated, err := stores.Users.Update(ctx, user.ID, store.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("Name = %q, want Renamed", updated.Name)
	}
	if updated.Email != user.Email {
		t.Errorf("Email changed unexpectedly: %q", updated.Email)
	}

	count, err := stores.Users.Count(ctx)
	if err != nil || count != 1 {
		t.Errorf("Count = %d (err %v), want 1", count, err)
	}
}

func TestTripStoreIntegration(t *testing.T) {
	_, stores := newTestRepository(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, "ada@example.com")
	if err := stores.Users.Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}

	base := time.Now().UTC().Truncate(time.Second)
	var ids []string
	for i := 0; i < 3; i++ {
		trip := testutil.NewTestTrip(t, user.ID)
		trip.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := stores.Trips.Create(ctx, trip); err != nil {
			t.Fatalf("Create trip: %v", err)
		}
		ids = append(ids, trip.ID)
	}

	trips, err := stores.Trips.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("got %d trips, want 3", len(trips))
	}
	for i, want := range []string{ids[2], ids[1], ids[0]} {
		if trips[i].ID != want {
			t.Errorf("trips[%d] = %q, want %q (newest first)", i, trips[i].ID, want)
		}
	}

	dest := "Madeira"
	updated, err := stores.Trips.UpdateFields(ctx, ids[0], store.TripUpdate{Destination: &dest})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if updated.Destination != "Madeira" {
		t.Errorf("Destination = %q, want Madeira", updated.Destination)
	}
	if updated.UserID != user.ID {
		t.Errorf("owner changed: %q", updated.UserID)
	}

	if _, err := stores.Trips.UpdateFields(ctx, "missing", store.TripUpdate{Destination: &dest}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing trip: expected ErrNotFound, got %v", err)
	}
}

func TestCascadeDeleteIntegration(t *testing.T) {
	_, stores := newTestRepository(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, "ada@example.com")
	if err := stores.Users.Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	trip := testutil.NewTestTrip(t, user.ID)
	if err := stores.Trips.Create(ctx, trip); err != nil {
		t.Fatalf("Create trip: %v", err)
	}

	if err := stores.Itineraries.Create(ctx, &model.ItineraryEntry{
		ID: testutil.UniqueID("itin"), TripID: trip.ID, Day: 1, Activity: "walk", Date: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("Create itinerary entry: %v", err)
	}
	if err := stores.Accommodations.Create(ctx, &model.AccommodationBooking{
		ID: testutil.UniqueID("acc"), TripID: trip.ID, HotelName: "h",
		CheckInDate: time.Now().UTC(), CheckOutDate: time.Now().UTC().Add(24 * time.Hour),
	}); err != nil {
		t.Fatalf("Create accommodation: %v", err)
	}
	if err := stores.Expenses.Create(ctx, &model.Expense{
		ID: testutil.UniqueID("exp"), TripID: trip.ID, Category: "food", Amount: 12,
	}); err != nil {
		t.Fatalf("Create expense: %v", err)
	}

	if _, err := stores.Trips.Delete(ctx, trip.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Schema-level ON DELETE CASCADE must have emptied the dependents.
	entries, err := stores.Itineraries.ListByTrip(ctx, trip.ID)
	if err != nil || len(entries) != 0 {
		t.Errorf("itinerary survived: %d entries, err %v", len(entries), err)
	}
	bookings, err := stores.Accommodations.ListByTrip(ctx, trip.ID)
	if err != nil || len(bookings) != 0 {
		t.Errorf("accommodation survived: %d bookings, err %v", len(bookings), err)
	}
	expenses, err := stores.Expenses.ListByTrip(ctx, trip.ID)
	if err != nil || len(expenses) != 0 {
		t.Errorf("expenses survived: %d expenses, err %v", len(expenses), err)
	}
}

func TestTopDestinationsIntegration(t *testing.T) {
	_, stores := newTestRepository(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, "ada@example.com")
	if err := stores.Users.Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	for _, d := range []string{"Paris", "Tokyo", "Paris", "Paris", "Tokyo", "Rome"} {
		trip := testutil.NewTestTrip(t, user.ID)
		trip.Destination = d
		if err := stores.Trips.Create(ctx, trip); err != nil {
			t.Fatalf("Create trip: %v", err)
		}
	}

	top, err := stores.Trips.TopDestinations(ctx, 2)
	if err != nil {
		t.Fatalf("TopDestinations: %v", err)
	}
	if len(top) != 2 || top[0] != "Paris" || top[1] != "Tokyo" {
		t.Errorf("top = %v, want [Paris Tokyo]", top)
	}
}

func TestContactStoreIntegration(t *testing.T) {
	_, stores := newTestRepository(t)
	ctx := context.Background()

	msg := &model.ContactMessage{
		ID: testutil.UniqueID("msg"), Name: "Ada", Email: "ada@example.com",
		Subject: "Hi", Message: "Hello", CreatedAt: time.Now().UTC(),
	}
	if err := stores.Contacts.Append(ctx, msg); err != nil {
		t.Fatalf("Append: %v", err)
	}

	msgs, err := stores.Contacts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != msg.ID {
		t.Errorf("unexpected messages: %+v", msgs)
	}
}
