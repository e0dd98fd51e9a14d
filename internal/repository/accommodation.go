package repository

import (
	"context"
	"fmt"

	"github.com/tripforge/tripforge/internal/model"
)

// accommodationStore implements store.AccommodationStore on Postgres.
type accommodationStore struct {
	repo *Repository
}

func (s *accommodationStore) Create(ctx context.Context, booking *model.AccommodationBooking) error {
	query := `
		INSERT INTO accommodation_bookings (id, trip_id, hotel_name, address, check_in_date, check_out_date, cost_per_night)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.repo.pool.Exec(ctx, query,
		booking.ID,
		booking.TripID,
		booking.HotelName,
		booking.Address,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.CostPerNight,
	)
	if err != nil {
		return fmt.Errorf("failed to create accommodation booking: %w", err)
	}
	return nil
}

func (s *accommodationStore) ListByTrip(ctx context.Context, tripID string) ([]*model.AccommodationBooking, error) {
	query := `
		SELECT id, trip_id, hotel_name, address, check_in_date, check_out_date, cost_per_night
		FROM accommodation_bookings
		WHERE trip_id = $1
		ORDER BY seq
	`

	rows, err := s.repo.pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accommodation bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*model.AccommodationBooking, 0)
	for rows.Next() {
		var b model.AccommodationBooking
		if err := rows.Scan(
			&b.ID,
			&b.TripID,
			&b.HotelName,
			&b.Address,
			&b.CheckInDate,
			&b.CheckOutDate,
			&b.CostPerNight,
		); err != nil {
			return nil, fmt.Errorf("failed to scan accommodation booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

func (s *accommodationStore) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	tag, err := s.repo.pool.Exec(ctx, `DELETE FROM accommodation_bookings WHERE trip_id = $1`, tripID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete accommodation bookings: %w", err)
	}
	return tag.RowsAffected(), nil
}
