package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles persistence of budget items.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new budget repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new budget item and returns it.
func (r *Repository) Create(ctx context.Context, it *Item, now time.Time) (*Item, error) {
	it.ID = uuid.NewString()
	it.CreatedAt = now.UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budget_items (
			id, couple_id, category, name, estimated_cost, actual_cost,
			paid, vendor_id, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.CoupleID, it.Category, it.Name, it.EstimatedCost, it.ActualCost,
		it.Paid, it.VendorID, it.Notes, it.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert budget item: %w", err)
	}
	return it, nil
}

// ListByCouple returns all budget items of a couple grouped by category.
func (r *Repository) ListByCouple(ctx context.Context, coupleID string) ([]Item, error) {
	var items []Item
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM budget_items WHERE couple_id = ? ORDER BY category ASC, created_at ASC", coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	return items, nil
}

// Update modifies an existing budget item owned by the couple. Returns nil
// when no such item exists.
func (r *Repository) Update(ctx context.Context, coupleID string, it *Item) (*Item, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE budget_items
		SET category = ?, name = ?, estimated_cost = ?, actual_cost = ?,
		    paid = ?, vendor_id = ?, notes = ?
		WHERE id = ? AND couple_id = ?`,
		it.Category, it.Name, it.EstimatedCost, it.ActualCost,
		it.Paid, it.VendorID, it.Notes, it.ID, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to update budget item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}

	var updated Item
	if err := r.db.GetContext(ctx, &updated,
		"SELECT * FROM budget_items WHERE id = ? AND couple_id = ?", it.ID, coupleID); err != nil {
		return nil, fmt.Errorf("failed to reload budget item: %w", err)
	}
	return &updated, nil
}

// Delete removes a budget item owned by the couple.
func (r *Repository) Delete(ctx context.Context, coupleID, itemID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM budget_items WHERE id = ? AND couple_id = ?", itemID, coupleID)
	if err != nil {
		return fmt.Errorf("failed to delete budget item: %w", err)
	}
	return nil
}

// Summarize aggregates estimated, actual and paid totals for a couple.
func (r *Repository) Summarize(ctx context.Context, coupleID string) (*Summary, error) {
	items, err := r.ListByCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	s := &Summary{ByCategory: make(map[string]float64)}
	for _, it := range items {
		if it.EstimatedCost != nil {
			s.TotalEstimated += *it.EstimatedCost
		}
		if it.ActualCost != nil {
			s.TotalActual += *it.ActualCost
			s.ByCategory[it.Category] += *it.ActualCost
			if it.Paid {
				s.TotalPaid += *it.ActualCost
			}
		} else if it.EstimatedCost != nil {
			s.ByCategory[it.Category] += *it.EstimatedCost
		}
	}
	return s, nil
}
