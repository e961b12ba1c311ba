package budget

import "time"

// Item is one line of a couple's wedding budget.
type Item struct {
	ID            string    `json:"id" db:"id"`
	CoupleID      string    `json:"couple_id" db:"couple_id"`
	Category      string    `json:"category" db:"category"`
	Name          string    `json:"name" db:"name"`
	EstimatedCost *float64  `json:"estimated_cost,omitempty" db:"estimated_cost"`
	ActualCost    *float64  `json:"actual_cost,omitempty" db:"actual_cost"`
	Paid          bool      `json:"paid" db:"paid"`
	VendorID      *string   `json:"vendor_id,omitempty" db:"vendor_id"`
	Notes         string    `json:"notes" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Summary aggregates a couple's budget.
type Summary struct {
	TotalEstimated float64            `json:"total_estimated"`
	TotalActual    float64            `json:"total_actual"`
	TotalPaid      float64            `json:"total_paid"`
	ByCategory     map[string]float64 `json:"by_category"`
}
