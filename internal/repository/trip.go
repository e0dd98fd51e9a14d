package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/store"
)

// tripStore implements store.TripStore on Postgres.
// Dependent itinerary, accommodation and expense rows reference trips with
// ON DELETE CASCADE, so removing a trip is one logical operation at the
// database level.
type tripStore struct {
	repo *Repository
}

const tripColumns = `id, user_id, title, destination, start_date, end_date, total_budget, notes, created_at`

func scanTrip(row pgx.Row) (*model.Trip, error) {
	var trip model.Trip
	err := row.Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Title,
		&trip.Destination,
		&trip.StartDate,
		&trip.EndDate,
		&trip.TotalBudget,
		&trip.Notes,
		&trip.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (s *tripStore) Create(ctx context.Context, trip *model.Trip) error {
	query := `
		INSERT INTO trips (id, user_id, title, destination, start_date, end_date, total_budget, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.repo.pool.Exec(ctx, query,
		trip.ID,
		trip.UserID,
		trip.Title,
		trip.Destination,
		trip.StartDate,
		trip.EndDate,
		trip.TotalBudget,
		trip.Notes,
		trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

func (s *tripStore) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(s.repo.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get trip by ID: %w", err)
	}
	return trip, nil
}

func (s *tripStore) ListByUser(ctx context.Context, userID string) ([]*model.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE user_id = $1 ORDER BY created_at DESC`
	return s.queryTrips(ctx, query, userID)
}

func (s *tripStore) ListAll(ctx context.Context) ([]*model.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC`
	return s.queryTrips(ctx, query)
}

func (s *tripStore) queryTrips(ctx context.Context, query string, args ...any) ([]*model.Trip, error) {
	rows, err := s.repo.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]*model.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

func (s *tripStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.repo.pool.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return count, nil
}

func (s *tripStore) UpdateFields(ctx context.Context, id string, upd store.TripUpdate) (*model.Trip, error) {
	// user_id is deliberately absent: ownership is fixed at creation.
	query := `
		UPDATE trips
		SET title = COALESCE($2, title),
		    destination = COALESCE($3, destination),
		    start_date = COALESCE($4, start_date),
		    end_date = COALESCE($5, end_date),
		    total_budget = COALESCE($6, total_budget),
		    notes = COALESCE($7, notes)
		WHERE id = $1
		RETURNING ` + tripColumns

	trip, err := scanTrip(s.repo.pool.QueryRow(ctx, query,
		id,
		upd.Title,
		upd.Destination,
		upd.StartDate,
		upd.EndDate,
		upd.TotalBudget,
		upd.Notes,
	))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	return trip, nil
}

func (s *tripStore) Delete(ctx context.Context, id string) (*model.Trip, error) {
	query := `DELETE FROM trips WHERE id = $1 RETURNING ` + tripColumns

	trip, err := scanTrip(s.repo.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete trip: %w", err)
	}
	return trip, nil
}

func (s *tripStore) TopDestinations(ctx context.Context, n int) ([]string, error) {
	query := `
		SELECT destination
		FROM trips
		GROUP BY destination
		ORDER BY count(*) DESC
		LIMIT $1
	`

	rows, err := s.repo.pool.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top destinations: %w", err)
	}
	defer rows.Close()

	destinations := make([]string, 0, n)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}
