package couple

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles persistence of couple accounts.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new couple repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new couple account and returns it.
func (r *Repository) Create(ctx context.Context, email, passwordHash string, now time.Time) (*Couple, error) {
	c := &Couple{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now.UTC(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO couples (id, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)`,
		c.ID, c.Email, c.PasswordHash, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert couple: %w", err)
	}

	return c, nil
}

// GetByID retrieves a couple by ID. Returns nil when not found.
func (r *Repository) GetByID(ctx context.Context, id string) (*Couple, error) {
	var c Couple
	err := r.db.GetContext(ctx, &c, "SELECT * FROM couples WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get couple by id: %w", err)
	}
	return &c, nil
}

// GetByEmail retrieves a couple by email. Returns nil when not found.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Couple, error) {
	var c Couple
	err := r.db.GetContext(ctx, &c, "SELECT * FROM couples WHERE email = ?", email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get couple by email: %w", err)
	}
	return &c, nil
}

// UpdateProfile stores the onboarding profile and marks onboarding complete.
func (r *Repository) UpdateProfile(ctx context.Context, id string, p Profile) (*Couple, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE couples
		SET partner1_name = ?, partner2_name = ?, wedding_date = ?,
		    wedding_size = ?, budget_total = ?, telegram_chat_id = ?,
		    onboarding_completed = 1
		WHERE id = ?`,
		p.Partner1Name, p.Partner2Name, p.WeddingDate.UTC(),
		string(p.WeddingSize), p.BudgetTotal, p.TelegramChatID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update couple profile: %w", err)
	}

	return r.GetByID(ctx, id)
}

// ListWithTelegram returns all onboarded couples that registered a Telegram
// chat for reminders.
func (r *Repository) ListWithTelegram(ctx context.Context) ([]Couple, error) {
	var couples []Couple
	err := r.db.SelectContext(ctx, &couples, `
		SELECT * FROM couples
		WHERE telegram_chat_id IS NOT NULL AND onboarding_completed = 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to list couples with telegram: %w", err)
	}
	return couples, nil
}
