package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tanglaw_backend/internal/domain/model"
)

type MessageRepository interface {
	// Conversation returns every message exchanged between the two users in
	// either direction, oldest first.
	Conversation(ctx context.Context, a, b int64) ([]model.Message, error)
	Create(ctx context.Context, msg *model.Message) error
}

type pgMessageRepository struct {
	db *sql.DB
}

func NewPgMessageRepository(db *sql.DB) MessageRepository {
	return &pgMessageRepository{db: db}
}

func (r *pgMessageRepository) Conversation(ctx context.Context, a, b int64) ([]model.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sender_id, receiver_id, content, timestamp, is_peer_support
		 FROM messages
		 WHERE (sender_id = $1 AND receiver_id = $2)
		    OR (sender_id = $2 AND receiver_id = $1)
		 ORDER BY timestamp ASC`, a, b)
	if err != nil {
		return nil, fmt.Errorf("pgMessageRepository.Conversation: %w", err)
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Timestamp, &m.IsPeerSupport,
		); err != nil {
			return nil, fmt.Errorf("pgMessageRepository.Conversation: scan: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *pgMessageRepository) Create(ctx context.Context, msg *model.Message) error {
	query := `INSERT INTO messages (sender_id, receiver_id, content, is_peer_support)
	          VALUES ($1, $2, $3, $4) RETURNING id, timestamp`
	err := r.db.QueryRowContext(ctx, query,
		msg.SenderID, msg.ReceiverID, msg.Content, msg.IsPeerSupport,
	).Scan(&msg.ID, &msg.Timestamp)
	if err != nil {
		return fmt.Errorf("pgMessageRepository.Create: %w", err)
	}
	return nil
}
