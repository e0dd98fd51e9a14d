package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripforge/tripforge/internal/metrics"
	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/store"
)

// Trip service errors.
var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrInvalidDateRange = errors.New("start date must be before or equal to end date")
)

// TripService handles trips, their dependent records, and the budget
// aggregation over them.
type TripService struct {
	trips          store.TripStore
	itineraries    store.ItineraryStore
	accommodations store.AccommodationStore
	expenses       store.ExpenseStore
	metrics        metrics.Recorder
}

// NewTripService creates a TripService.
func NewTripService(stores *store.Stores, recorder metrics.Recorder) *TripService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TripService{
		trips:          stores.Trips,
		itineraries:    stores.Itineraries,
		accommodations: stores.Accommodations,
		expenses:       stores.Expenses,
		metrics:        recorder,
	}
}

// CreateTripInput defines input for creating a trip.
type CreateTripInput struct {
	UserID      string
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	TotalBudget float64
	Notes       string
}

// CreateTrip creates a trip owned by the given user.
// The owner is fixed here and never reassigned.
func (s *TripService) CreateTrip(ctx context.Context, input CreateTripInput) (*model.Trip, error) {
	if input.StartDate.After(input.EndDate) {
		return nil, ErrInvalidDateRange
	}

	trip := &model.Trip{
		ID:          newID(),
		UserID:      input.UserID,
		Title:       input.Title,
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TotalBudget: input.TotalBudget,
		Notes:       input.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	s.metrics.IncTripCreated()

	return trip, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, id string) (*model.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

// TripDetail bundles a trip with its itinerary and accommodation records.
type TripDetail struct {
	Trip          *model.Trip
	Itinerary     []*model.ItineraryEntry
	Accommodation []*model.AccommodationBooking
}

// GetTripDetail retrieves a trip with its itinerary and accommodation
// embedded, as served by GET /api/trips/{id}.
func (s *TripService) GetTripDetail(ctx context.Context, id string) (*TripDetail, error) {
	trip, err := s.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	itinerary, err := s.itineraries.ListByTrip(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list itinerary: %w", err)
	}

	accommodation, err := s.accommodations.ListByTrip(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list accommodation: %w", err)
	}

	return &TripDetail{
		Trip:          trip,
		Itinerary:     itinerary,
		Accommodation: accommodation,
	}, nil
}

// ListUserTrips returns the user's trips, newest first.
func (s *TripService) ListUserTrips(ctx context.Context, userID string) ([]*model.Trip, error) {
	return s.trips.ListByUser(ctx, userID)
}

// UpdateTripInput defines input for a partial trip update.
// Nil fields are left unchanged.
type UpdateTripInput struct {
	Title       *string
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	TotalBudget *float64
	Notes       *string
}

// UpdateTrip applies a partial update. The date-range invariant is checked
// against the effective dates: a supplied date is validated against the
// stored one when only a single bound changes.
func (s *TripService) UpdateTrip(ctx context.Context, id string, input UpdateTripInput) (*model.Trip, error) {
	current, err := s.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	start := current.StartDate
	if input.StartDate != nil {
		start = *input.StartDate
	}
	end := current.EndDate
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	trip, err := s.trips.UpdateFields(ctx, id, store.TripUpdate{
		Title:       input.Title,
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TotalBudget: input.TotalBudget,
		Notes:       input.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("update trip: %w", err)
	}

	s.metrics.IncTripUpdated()

	return trip, nil
}

// DeleteTrip removes a trip and cascades to its itinerary, accommodation
// and expense records as one logical operation: the deletes run
// sequentially with no interleaved work. The Postgres backend additionally
// cascades at the schema level, making the follow-up deletes no-ops there.
func (s *TripService) DeleteTrip(ctx context.Context, id string) (*model.Trip, error) {
	trip, err := s.trips.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("delete trip: %w", err)
	}

	if _, err := s.itineraries.DeleteByTrip(ctx, id); err != nil {
		return nil, fmt.Errorf("delete itinerary entries: %w", err)
	}
	if _, err := s.accommodations.DeleteByTrip(ctx, id); err != nil {
		return nil, fmt.Errorf("delete accommodation bookings: %w", err)
	}
	if _, err := s.expenses.DeleteByTrip(ctx, id); err != nil {
		return nil, fmt.Errorf("delete expenses: %w", err)
	}

	s.metrics.IncTripDeleted()

	return trip, nil
}

// Budget computes the trip's cost breakdown fresh from the live
// collections. Results are never cached; the collections are small and the
// computation is a single pass over each.
//
// The output's TotalBudget is the computed sum and is unrelated to the
// user-entered Trip.TotalBudget advisory field.
func (s *TripService) Budget(ctx context.Context, tripID string) (*model.Budget, error) {
	start := time.Now()

	itinerary, err := s.itineraries.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list itinerary: %w", err)
	}
	accommodation, err := s.accommodations.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list accommodation: %w", err)
	}
	expenses, err := s.expenses.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	var budget model.Budget
	for _, entry := range itinerary {
		budget.ActivitiesTotal += entry.EstimatedCost
	}
	for _, booking := range accommodation {
		budget.AccommodationTotal += booking.CostPerNight * float64(booking.Nights())
	}
	for _, expense := range expenses {
		budget.ExpensesTotal += expense.Amount
	}
	budget.TotalBudget = budget.ActivitiesTotal + budget.AccommodationTotal + budget.ExpensesTotal

	s.metrics.IncBudgetComputed()
	s.metrics.ObserveBudgetDuration(time.Since(start))

	return &budget, nil
}

// CreateItineraryInput defines input for adding an itinerary entry.
type CreateItineraryInput struct {
	TripID        string
	Day           int
	Activity      string
	Location      string
	Date          time.Time
	StartTime     string
	EndTime       string
	EstimatedCost float64
	Notes         string
}

// CreateItineraryEntry adds an activity to a trip.
func (s *TripService) CreateItineraryEntry(ctx context.Context, input CreateItineraryInput) (*model.ItineraryEntry, error) {
	day := input.Day
	if day < 1 {
		day = 1
	}

	entry := &model.ItineraryEntry{
		ID:            newID(),
		TripID:        input.TripID,
		Day:           day,
		Activity:      input.Activity,
		Location:      input.Location,
		Date:          input.Date,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		EstimatedCost: input.EstimatedCost,
		Notes:         input.Notes,
	}

	if err := s.itineraries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create itinerary entry: %w", err)
	}
	return entry, nil
}

// ListItinerary returns a trip's itinerary entries in insertion order.
func (s *TripService) ListItinerary(ctx context.Context, tripID string) ([]*model.ItineraryEntry, error) {
	return s.itineraries.ListByTrip(ctx, tripID)
}

// CreateAccommodationInput defines input for adding a booking.
type CreateAccommodationInput struct {
	TripID       string
	HotelName    string
	Address      string
	CheckInDate  time.Time
	CheckOutDate time.Time
	CostPerNight float64
}

// CreateAccommodation adds an accommodation booking to a trip.
func (s *TripService) CreateAccommodation(ctx context.Context, input CreateAccommodationInput) (*model.AccommodationBooking, error) {
	booking := &model.AccommodationBooking{
		ID:           newID(),
		TripID:       input.TripID,
		HotelName:    input.HotelName,
		Address:      input.Address,
		CheckInDate:  input.CheckInDate,
		CheckOutDate: input.CheckOutDate,
		CostPerNight: input.CostPerNight,
	}

	if err := s.accommodations.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create accommodation booking: %w", err)
	}
	return booking, nil
}

// ListAccommodation returns a trip's bookings in insertion order.
func (s *TripService) ListAccommodation(ctx context.Context, tripID string) ([]*model.AccommodationBooking, error) {
	return s.accommodations.ListByTrip(ctx, tripID)
}

// CreateExpenseInput defines input for recording an expense.
type CreateExpenseInput struct {
	TripID   string
	Category string
	Amount   float64
	Note     string
}

// CreateExpense records an expense against a trip.
func (s *TripService) CreateExpense(ctx context.Context, input CreateExpenseInput) (*model.Expense, error) {
	expense := &model.Expense{
		ID:       newID(),
		TripID:   input.TripID,
		Category: input.Category,
		Amount:   input.Amount,
		Note:     input.Note,
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

// ListExpenses returns a trip's expenses in insertion order.
func (s *TripService) ListExpenses(ctx context.Context, tripID string) ([]*model.Expense, error) {
	return s.expenses.ListByTrip(ctx, tripID)
}
