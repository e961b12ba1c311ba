package checklist

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Config carries the couple-profile fields the generator needs.
type Config struct {
	WeddingDate time.Time
	WeddingSize Size
}

// ConfigurationError reports an invalid generator configuration, such as an
// unknown wedding size. Generation aborts entirely; no partial list is
// produced.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "checklist configuration: " + e.Reason
}

// GenerateChecklist produces the full planning checklist for a couple using
// the current wall-clock time. See Generate for the rules.
func GenerateChecklist(cfg Config) ([]Item, error) {
	return Generate(cfg, time.Now())
}

// Generate transforms a wedding date and size into an ordered list of
// checklist items. For every catalogue template that applies to the size it
// schedules a due date backward from the wedding date, compresses the lead
// time when too little time remains, and escalates priority under time
// pressure. The result is sorted ascending by due date, with catalogue order
// breaking ties.
//
// The function is pure apart from generating fresh item IDs: it touches no
// stores and may be called concurrently. Callers are responsible for not
// regenerating when items already exist for the couple.
func Generate(cfg Config, now time.Time) ([]Item, error) {
	if !cfg.WeddingSize.Valid() {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown wedding size %q", cfg.WeddingSize)}
	}

	// May be negative for a wedding date in the past; every template then
	// takes the compressed branch and clamps to now + 2 days.
	monthsUntil := wholeMonthsBetween(cfg.WeddingDate, now)

	var relevant []TaskTemplate
	for _, tpl := range taskTemplates {
		if tpl.appliesTo(cfg.WeddingSize) {
			relevant = append(relevant, tpl)
		}
	}

	items := make([]Item, 0, len(relevant))
	for i, tpl := range relevant {
		due := dueDateFor(tpl, cfg.WeddingDate, now, monthsUntil)

		items = append(items, Item{
			ID:          uuid.NewString(),
			Title:       tpl.Title,
			Description: tpl.Description,
			Category:    tpl.Category,
			DueDate:     due,
			Priority:    escalate(tpl, due, now, monthsUntil),
			Completed:   false,
			SortOrder:   i,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate.Before(items[j].DueDate)
	})

	return items, nil
}

// dueDateFor schedules a single template backward from the wedding date.
// With enough lead time the ideal deadline applies; otherwise the schedule
// compresses to the template's minimum weeks, floored at now + 2 days so no
// task is ever due in the past or today.
func dueDateFor(tpl TaskTemplate, weddingDate, now time.Time, monthsUntil int) time.Time {
	if float64(monthsUntil) >= tpl.IdealLeadMonths {
		return subMonths(weddingDate, tpl.IdealLeadMonths)
	}

	minWeeks := tpl.MinLeadWeeks
	if minWeeks < 0.5 {
		minWeeks = 0.5
	}
	due := subWeeks(weddingDate, minWeeks)

	if floor := now.AddDate(0, 0, 2); due.Before(floor) {
		due = floor
	}
	return due
}

// escalate raises the template's base priority under time pressure. It never
// de-escalates. The months-based rule only upgrades high to urgent; low and
// medium tasks are left alone even when the wedding as a whole is close.
func escalate(tpl TaskTemplate, due, now time.Time, monthsUntil int) Priority {
	priority := tpl.BasePriority

	weeksUntilDue := wholeWeeksBetween(due, now)
	if weeksUntilDue <= 1 {
		priority = PriorityUrgent
	} else if weeksUntilDue <= 2 && priority != PriorityUrgent {
		priority = PriorityHigh
	}

	if monthsUntil < 3 && tpl.BasePriority == PriorityHigh {
		priority = PriorityUrgent
	}

	return priority
}
