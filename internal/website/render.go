package website

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed microsite.html.tmpl
var micrositeTemplate string

var micrositeTmpl = template.Must(template.New("microsite").Parse(micrositeTemplate))

// PageData is everything the public microsite page needs.
type PageData struct {
	CoupleNames  string
	WeddingDate  string
	DaysUntil    int
	HeroImageURL string
	PrimaryColor string
	Slug         string
}

// Render writes the public microsite page for w.
func Render(out io.Writer, w *Website, now time.Time) error {
	data := PageData{
		CoupleNames:  w.CoupleNames,
		PrimaryColor: w.PrimaryColor,
		Slug:         w.Slug,
	}
	if w.HeroImageURL != nil {
		data.HeroImageURL = *w.HeroImageURL
	}
	if w.WeddingDate != nil {
		data.WeddingDate = w.WeddingDate.Format("2. 1. 2006")
		data.DaysUntil = int(w.WeddingDate.Sub(now).Hours() / 24)
	}

	if err := micrositeTmpl.Execute(out, data); err != nil {
		return fmt.Errorf("failed to render microsite: %w", err)
	}
	return nil
}
