package checklist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrAlreadyGenerated is returned by InsertGenerated when the couple already
// has checklist items. The checklist is generated once per couple.
var ErrAlreadyGenerated = errors.New("checklist already generated for this couple")

// Repository handles persistence of checklist items.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new checklist repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// InsertGenerated stores a freshly generated batch of items for a couple.
// The existence check and the inserts run in one transaction, so two
// concurrent first requests cannot both insert: the loser fails with
// ErrAlreadyGenerated and should re-read the winner's items.
func (r *Repository) InsertGenerated(ctx context.Context, coupleID string, items []Item, now time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM checklist_items WHERE couple_id = ?", coupleID); err != nil {
		return fmt.Errorf("failed to count existing items: %w", err)
	}
	if count > 0 {
		return ErrAlreadyGenerated
	}

	const query = `
		INSERT INTO checklist_items (
			id, couple_id, title, description, category,
			due_date, priority, completed, completed_at, sort_order, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		_, err = stmt.ExecContext(ctx,
			it.ID, coupleID, it.Title, it.Description, string(it.Category),
			it.DueDate.UTC(), string(it.Priority), it.Completed, nil, it.SortOrder, now.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert checklist item %q: %w", it.Title, err)
		}
	}

	return tx.Commit()
}

// ListByCouple returns all checklist items of a couple ordered by due date,
// with catalogue order breaking ties.
func (r *Repository) ListByCouple(ctx context.Context, coupleID string) ([]Item, error) {
	var items []Item
	err := r.db.SelectContext(ctx, &items, `
		SELECT * FROM checklist_items
		WHERE couple_id = ?
		ORDER BY due_date ASC, sort_order ASC`, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	return items, nil
}

// SetCompleted toggles the completion state of one item owned by the couple.
// completed_at is set on completion and cleared when the item is reopened.
// Returns nil when no such item exists.
func (r *Repository) SetCompleted(ctx context.Context, coupleID, itemID string, completed bool, now time.Time) (*Item, error) {
	var completedAt interface{}
	if completed {
		completedAt = now.UTC()
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE checklist_items
		SET completed = ?, completed_at = ?
		WHERE id = ? AND couple_id = ?`,
		completed, completedAt, itemID, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}

	var item Item
	err = r.db.GetContext(ctx, &item,
		"SELECT * FROM checklist_items WHERE id = ? AND couple_id = ?", itemID, coupleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reload checklist item: %w", err)
	}
	return &item, nil
}

// DueWithin returns the couple's open items due between now and the end of
// the window, ordered by due date. Used for reminder digests.
func (r *Repository) DueWithin(ctx context.Context, coupleID string, now time.Time, window time.Duration) ([]Item, error) {
	var items []Item
	err := r.db.SelectContext(ctx, &items, `
		SELECT * FROM checklist_items
		WHERE couple_id = ? AND completed = 0 AND due_date >= ? AND due_date <= ?
		ORDER BY due_date ASC, sort_order ASC`,
		coupleID, now.UTC(), now.Add(window).UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list due checklist items: %w", err)
	}
	return items, nil
}
