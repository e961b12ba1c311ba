package website

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles persistence of wedding microsites.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new website repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Upsert creates or updates the couple's microsite. Each couple has at most
// one; the slug is derived from the couple names on first save.
func (r *Repository) Upsert(ctx context.Context, w *Website, now time.Time) (*Website, error) {
	existing, err := r.GetByCouple(ctx, w.CoupleID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		w.ID = uuid.NewString()
		if w.Slug == "" {
			w.Slug = Slugify(w.CoupleNames)
		}
		if w.PrimaryColor == "" {
			w.PrimaryColor = "#8B5CF6"
		}
		w.CreatedAt = now.UTC()

		_, err := r.db.ExecContext(ctx, `
			INSERT INTO wedding_websites (
				id, couple_id, slug, couple_names, wedding_date,
				hero_image_url, primary_color, published, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			w.ID, w.CoupleID, w.Slug, w.CoupleNames, w.WeddingDate,
			w.HeroImageURL, w.PrimaryColor, w.Published, w.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert website: %w", err)
		}
		return w, nil
	}

	// Slug stays stable once assigned so shared links keep working.
	_, err = r.db.ExecContext(ctx, `
		UPDATE wedding_websites
		SET couple_names = ?, wedding_date = ?, hero_image_url = ?,
		    primary_color = ?, published = ?
		WHERE couple_id = ?`,
		w.CoupleNames, w.WeddingDate, w.HeroImageURL,
		w.PrimaryColor, w.Published, w.CoupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to update website: %w", err)
	}

	return r.GetByCouple(ctx, w.CoupleID)
}

// GetByCouple retrieves the couple's microsite. Returns nil when none exists.
func (r *Repository) GetByCouple(ctx context.Context, coupleID string) (*Website, error) {
	var w Website
	err := r.db.GetContext(ctx, &w,
		"SELECT * FROM wedding_websites WHERE couple_id = ?", coupleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get website by couple: %w", err)
	}
	return &w, nil
}

// GetBySlug retrieves a published microsite by its public slug. Returns nil
// when none exists or the site is unpublished.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Website, error) {
	var w Website
	err := r.db.GetContext(ctx, &w,
		"SELECT * FROM wedding_websites WHERE slug = ? AND published = 1", slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get website by slug: %w", err)
	}
	return &w, nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugReplacer transliterates the Czech letters that appear in names.
var slugReplacer = strings.NewReplacer(
	"á", "a", "č", "c", "ď", "d", "é", "e", "ě", "e", "í", "i", "ň", "n",
	"ó", "o", "ř", "r", "š", "s", "ť", "t", "ú", "u", "ů", "u", "ý", "y", "ž", "z",
)

// Slugify turns couple names into a URL-safe slug, e.g.
// "Anna & Petr" becomes "anna-petr".
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugReplacer.Replace(s)
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
