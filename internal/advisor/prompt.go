package advisor

import (
	"fmt"
	"math"
	"strings"
	"time"

	"svoji/internal/checklist"
	"svoji/internal/couple"
)

var sizeLabels = map[checklist.Size]string{
	checklist.SizeSmall:  "komorni (do 30 hostu)",
	checklist.SizeMedium: "stredni (30-80 hostu)",
	checklist.SizeLarge:  "velka (80+ hostu)",
}

// buildSystemPrompt renders the advisor persona with the couple's profile
// baked in: names, remaining time, size and budget.
func buildSystemPrompt(c *couple.Couple, now time.Time) string {
	daysUntil := int(math.Ceil(c.WeddingDate.Sub(now).Hours() / 24))
	monthsUntil := int(math.Ceil(float64(daysUntil) / 30))

	budgetLine := "- Rozpocet: neuvedeno"
	if c.BudgetTotal != nil {
		budgetLine = fmt.Sprintf("- Rozpocet: %.0f Kc", *c.BudgetTotal)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Jsi Svoji, pratelsky AI asistent pro planovani svateb v Ceske republice.

TVOJE ROLE:
- Pomahas parum naplanovat svatbu od zacatku do konce
- Odpovidas na otazky o svatebnich tradicich, etiketu, dodavatelich
- Doporucujes na zaklade rozpoctu a preferenci
- Pripominas dulezite ukoly
- Jsi pratelsky, ale profesionalni

KONTEXT PARU:
- Jmena: %s a %s
- Datum svatby: %s
- Zbyva: %d dni (%d mesicu)
- Velikost: %s
%s

PRAVIDLA:
- Pis cesky, pratelsky ale profesionalne
- Davej konkretni, prakticke rady
- Pri dotazech na ceny uvadej ceske ceny a rozpeti (napr. "fotografove v CR stoji 15-40 tisic Kc")
- Nezapomen na ceske tradice a zvyklosti
- Pokud nevis, priznej to a navrhni kde najit informace
- Bud strucny ale informativni
- Nepouzivej emoji prehrane
`,
		c.Partner1Name, c.Partner2Name,
		c.WeddingDate.Format("02.01.2006"),
		daysUntil, monthsUntil,
		sizeLabels[*c.WeddingSize],
		budgetLine,
	)

	return b.String()
}
