package repository

import (
	"context"
	"fmt"

	"github.com/tripforge/tripforge/internal/model"
)

// expenseStore implements store.ExpenseStore on Postgres.
type expenseStore struct {
	repo *Repository
}

func (s *expenseStore) Create(ctx context.Context, expense *model.Expense) error {
	query := `
		INSERT INTO expenses (id, trip_id, category, amount, note)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.repo.pool.Exec(ctx, query,
		expense.ID,
		expense.TripID,
		expense.Category,
		expense.Amount,
		expense.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (s *expenseStore) ListByTrip(ctx context.Context, tripID string) ([]*model.Expense, error) {
	query := `
		SELECT id, trip_id, category, amount, note
		FROM expenses
		WHERE trip_id = $1
		ORDER BY seq
	`

	rows, err := s.repo.pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]*model.Expense, 0)
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(
			&e.ID,
			&e.TripID,
			&e.Category,
			&e.Amount,
			&e.Note,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}

func (s *expenseStore) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	tag, err := s.repo.pool.Exec(ctx, `DELETE FROM expenses WHERE trip_id = $1`, tripID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expenses: %w", err)
	}
	return tag.RowsAffected(), nil
}
