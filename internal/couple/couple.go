package couple

import (
	"time"

	"svoji/internal/checklist"
)

// Couple is an account: two partners planning one wedding. The couple ID is
// also the owner ID on every other table.
type Couple struct {
	ID                  string          `json:"id" db:"id"`
	Email               string          `json:"email" db:"email"`
	PasswordHash        string          `json:"-" db:"password_hash"`
	Partner1Name        string          `json:"partner1_name" db:"partner1_name"`
	Partner2Name        string          `json:"partner2_name" db:"partner2_name"`
	WeddingDate         *time.Time      `json:"wedding_date,omitempty" db:"wedding_date"`
	WeddingSize         *checklist.Size `json:"wedding_size,omitempty" db:"wedding_size"`
	BudgetTotal         *float64        `json:"budget_total,omitempty" db:"budget_total"`
	TelegramChatID      *int64          `json:"telegram_chat_id,omitempty" db:"telegram_chat_id"`
	OnboardingCompleted bool            `json:"onboarding_completed" db:"onboarding_completed"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
}

// Profile is the onboarding payload: the fields a couple fills in before the
// checklist can be generated.
type Profile struct {
	Partner1Name   string         `json:"partner1_name"`
	Partner2Name   string         `json:"partner2_name"`
	WeddingDate    time.Time      `json:"wedding_date"`
	WeddingSize    checklist.Size `json:"wedding_size"`
	BudgetTotal    *float64       `json:"budget_total,omitempty"`
	TelegramChatID *int64         `json:"telegram_chat_id,omitempty"`
}
