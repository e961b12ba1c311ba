package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles persistence of chat messages.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new chat repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Append stores one conversation turn and returns it.
func (r *Repository) Append(ctx context.Context, coupleID, role, content string, now time.Time) (*Message, error) {
	m := &Message{
		ID:        uuid.NewString(),
		CoupleID:  coupleID,
		Role:      role,
		Content:   content,
		CreatedAt: now.UTC(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chat_messages (id, couple_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.CoupleID, m.Role, m.Content, m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert chat message: %w", err)
	}
	return m, nil
}

// History returns the couple's conversation, oldest first, capped at limit
// most recent messages.
func (r *Repository) History(ctx context.Context, coupleID string, limit int) ([]Message, error) {
	var messages []Message
	err := r.db.SelectContext(ctx, &messages, `
		SELECT * FROM (
			SELECT * FROM chat_messages
			WHERE couple_id = ?
			ORDER BY created_at DESC
			LIMIT ?
		) ORDER BY created_at ASC`, coupleID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return messages, nil
}
