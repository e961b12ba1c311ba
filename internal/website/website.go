package website

import "time"

// Website is a couple's public microsite: guests open it at /w/{slug} to see
// the basics and submit their RSVP.
type Website struct {
	ID           string     `json:"id" db:"id"`
	CoupleID     string     `json:"couple_id" db:"couple_id"`
	Slug         string     `json:"slug" db:"slug"`
	CoupleNames  string     `json:"couple_names" db:"couple_names"`
	WeddingDate  *time.Time `json:"wedding_date,omitempty" db:"wedding_date"`
	HeroImageURL *string    `json:"hero_image_url,omitempty" db:"hero_image_url"`
	PrimaryColor string     `json:"primary_color" db:"primary_color"`
	Published    bool       `json:"published" db:"published"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
