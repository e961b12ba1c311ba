package chat

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a couple's conversation with the advisor.
type Message struct {
	ID        string    `json:"id" db:"id"`
	CoupleID  string    `json:"couple_id" db:"couple_id"`
	Role      string    `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
