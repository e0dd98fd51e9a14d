package repository

import (
	"context"
	"fmt"

	"github.com/tripforge/tripforge/internal/model"
)

// contactStore implements store.ContactStore on Postgres.
// Contact messages are append-only; there is no update or delete path.
type contactStore struct {
	repo *Repository
}

func (s *contactStore) Append(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.repo.pool.Exec(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append contact message: %w", err)
	}
	return nil
}

func (s *contactStore) List(ctx context.Context) ([]*model.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at
	`

	rows, err := s.repo.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*model.ContactMessage, 0)
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Subject,
			&m.Message,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
