package guest

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles persistence of guests.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new guest repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new guest for a couple and returns it.
func (r *Repository) Create(ctx context.Context, g *Guest, now time.Time) (*Guest, error) {
	g.ID = uuid.NewString()
	if g.RSVPStatus == "" {
		g.RSVPStatus = RSVPPending
	}
	g.CreatedAt = now.UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO guests (
			id, couple_id, name, email, phone, group_name, plus_one,
			dietary_requirements, rsvp_status, rsvp_date, table_assignment,
			notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.CoupleID, g.Name, g.Email, g.Phone, g.GroupName, g.PlusOne,
		g.DietaryRequirements, g.RSVPStatus, g.RSVPDate, g.TableAssignment,
		g.Notes, g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert guest: %w", err)
	}
	return g, nil
}

// ListByCouple returns all guests of a couple, newest last.
func (r *Repository) ListByCouple(ctx context.Context, coupleID string) ([]Guest, error) {
	var guests []Guest
	err := r.db.SelectContext(ctx, &guests,
		"SELECT * FROM guests WHERE couple_id = ? ORDER BY created_at ASC, name ASC", coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

// Update modifies an existing guest owned by the couple. Returns nil when no
// such guest exists.
func (r *Repository) Update(ctx context.Context, coupleID string, g *Guest) (*Guest, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE guests
		SET name = ?, email = ?, phone = ?, group_name = ?, plus_one = ?,
		    dietary_requirements = ?, rsvp_status = ?, rsvp_date = ?,
		    table_assignment = ?, notes = ?
		WHERE id = ? AND couple_id = ?`,
		g.Name, g.Email, g.Phone, g.GroupName, g.PlusOne,
		g.DietaryRequirements, g.RSVPStatus, g.RSVPDate,
		g.TableAssignment, g.Notes, g.ID, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}

	var updated Guest
	if err := r.db.GetContext(ctx, &updated,
		"SELECT * FROM guests WHERE id = ? AND couple_id = ?", g.ID, coupleID); err != nil {
		return nil, fmt.Errorf("failed to reload guest: %w", err)
	}
	return &updated, nil
}

// Delete removes a guest owned by the couple.
func (r *Repository) Delete(ctx context.Context, coupleID, guestID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM guests WHERE id = ? AND couple_id = ?", guestID, coupleID)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	return nil
}

// UpsertRSVP records a response from the public RSVP form. A guest with the
// same email is updated in place; unknown emails create a new guest row.
func (r *Repository) UpsertRSVP(ctx context.Context, coupleID string, sub RSVPSubmission, now time.Time) (*Guest, error) {
	status := RSVPDeclined
	if sub.Attending {
		status = RSVPConfirmed
	}

	var existing Guest
	err := r.db.GetContext(ctx, &existing,
		"SELECT * FROM guests WHERE couple_id = ? AND email = ?", coupleID, sub.Email)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up guest by email: %w", err)
	}

	if err == nil {
		existing.RSVPStatus = status
		rsvpDate := now.UTC()
		existing.RSVPDate = &rsvpDate
		if sub.Dietary != "" {
			existing.DietaryRequirements = &sub.Dietary
		}
		if sub.Notes != "" {
			existing.Notes = &sub.Notes
		}
		return r.Update(ctx, coupleID, &existing)
	}

	rsvpDate := now.UTC()
	g := &Guest{
		CoupleID:   coupleID,
		Name:       sub.Name,
		Email:      &sub.Email,
		RSVPStatus: status,
		RSVPDate:   &rsvpDate,
	}
	if sub.Dietary != "" {
		g.DietaryRequirements = &sub.Dietary
	}
	if sub.Notes != "" {
		g.Notes = &sub.Notes
	}
	return r.Create(ctx, g, now)
}

// WriteCSV exports the couple's guest list as CSV with a Czech header row.
func (r *Repository) WriteCSV(ctx context.Context, coupleID string, w io.Writer) error {
	guests, err := r.ListByCouple(ctx, coupleID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"Jméno", "E-mail", "Telefon", "Skupina", "Doprovod", "Dieta", "RSVP", "Stůl", "Poznámky"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, g := range guests {
		plusOne := "ne"
		if g.PlusOne {
			plusOne = "ano"
		}
		record := []string{
			g.Name,
			deref(g.Email),
			deref(g.Phone),
			deref(g.GroupName),
			plusOne,
			deref(g.DietaryRequirements),
			g.RSVPStatus,
			deref(g.TableAssignment),
			deref(g.Notes),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
