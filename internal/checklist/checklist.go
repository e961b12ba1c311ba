package checklist

import "time"

// Size is the coarse guest-count category of a wedding. It decides which
// catalogue tasks are relevant for a couple.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Valid reports whether s is one of the three defined wedding sizes.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Category groups checklist tasks for display and filtering.
type Category string

const (
	CategoryVenue    Category = "venue"
	CategoryAttire   Category = "attire"
	CategoryVendors  Category = "vendors"
	CategoryGuests   Category = "guests"
	CategoryDecor    Category = "decor"
	CategoryAdmin    Category = "admin"
	CategoryCeremony Category = "ceremony"
)

// Priority is the urgency level of a task, ordered low < medium < high < urgent.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var priorityRank = map[Priority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

// Rank returns the position of p in the priority ordering. Unknown values
// rank below PriorityLow.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return -1
}

// TaskTemplate is one entry of the static planning catalogue. Templates are
// never persisted; generated items copy their fields.
type TaskTemplate struct {
	Title           string
	Description     string
	Category        Category
	IdealLeadMonths float64
	MinLeadWeeks    float64
	ApplicableSizes []Size
	BasePriority    Priority
}

func (t TaskTemplate) appliesTo(size Size) bool {
	for _, s := range t.ApplicableSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Item is a generated checklist entry owned by a couple. The generator fills
// everything except CoupleID and CreatedAt, which the repository sets on
// insert.
type Item struct {
	ID          string     `json:"id" db:"id"`
	CoupleID    string     `json:"couple_id,omitempty" db:"couple_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	Category    Category   `json:"category" db:"category"`
	DueDate     time.Time  `json:"due_date" db:"due_date"`
	Priority    Priority   `json:"priority" db:"priority"`
	Completed   bool       `json:"completed" db:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	SortOrder   int        `json:"sort_order" db:"sort_order"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// CategoryLabels maps categories to the Czech labels shown in the product.
var CategoryLabels = map[Category]string{
	CategoryVenue:    "Místo",
	CategoryAttire:   "Oblečení",
	CategoryVendors:  "Dodavatelé",
	CategoryGuests:   "Hosté",
	CategoryDecor:    "Dekorace",
	CategoryAdmin:    "Organizace",
	CategoryCeremony: "Obřad",
}

// CategoryColors maps categories to their accent colors.
var CategoryColors = map[Category]string{
	CategoryVenue:    "#8B5CF6",
	CategoryAttire:   "#EC4899",
	CategoryVendors:  "#F59E0B",
	CategoryGuests:   "#10B981",
	CategoryDecor:    "#06B6D4",
	CategoryAdmin:    "#6B7280",
	CategoryCeremony: "#EF4444",
}

// PriorityLabels maps priorities to the Czech labels shown in the product.
var PriorityLabels = map[Priority]string{
	PriorityUrgent: "Urgentní",
	PriorityHigh:   "Vysoká",
	PriorityMedium: "Střední",
	PriorityLow:    "Nízká",
}
