package repository

import (
	"context"
	"fmt"

	"github.com/tripforge/tripforge/internal/model"
)

// itineraryStore implements store.ItineraryStore on Postgres.
type itineraryStore struct {
	repo *Repository
}

func (s *itineraryStore) Create(ctx context.Context, entry *model.ItineraryEntry) error {
	query := `
		INSERT INTO itinerary_entries (id, trip_id, day, activity, location, date, start_time, end_time, estimated_cost, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.repo.pool.Exec(ctx, query,
		entry.ID,
		entry.TripID,
		entry.Day,
		entry.Activity,
		entry.Location,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		entry.EstimatedCost,
		entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create itinerary entry: %w", err)
	}
	return nil
}

func (s *itineraryStore) ListByTrip(ctx context.Context, tripID string) ([]*model.ItineraryEntry, error) {
	// seq keeps insertion order as the default iteration order.
	query := `
		SELECT id, trip_id, day, activity, location, date, start_time, end_time, estimated_cost, notes
		FROM itinerary_entries
		WHERE trip_id = $1
		ORDER BY seq
	`

	rows, err := s.repo.pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list itinerary entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*model.ItineraryEntry, 0)
	for rows.Next() {
		var e model.ItineraryEntry
		if err := rows.Scan(
			&e.ID,
			&e.TripID,
			&e.Day,
			&e.Activity,
			&e.Location,
			&e.Date,
			&e.StartTime,
			&e.EndTime,
			&e.EstimatedCost,
			&e.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (s *itineraryStore) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	tag, err := s.repo.pool.Exec(ctx, `DELETE FROM itinerary_entries WHERE trip_id = $1`, tripID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete itinerary entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
