package guest

import "time"

// RSVP status values.
const (
	RSVPPending   = "pending"
	RSVPConfirmed = "confirmed"
	RSVPDeclined  = "declined"
)

// Guest is one invitee of a couple's wedding.
type Guest struct {
	ID                  string     `json:"id" db:"id"`
	CoupleID            string     `json:"couple_id" db:"couple_id"`
	Name                string     `json:"name" db:"name"`
	Email               *string    `json:"email,omitempty" db:"email"`
	Phone               *string    `json:"phone,omitempty" db:"phone"`
	GroupName           *string    `json:"group_name,omitempty" db:"group_name"`
	PlusOne             bool       `json:"plus_one" db:"plus_one"`
	DietaryRequirements *string    `json:"dietary_requirements,omitempty" db:"dietary_requirements"`
	RSVPStatus          string     `json:"rsvp_status" db:"rsvp_status"`
	RSVPDate            *time.Time `json:"rsvp_date,omitempty" db:"rsvp_date"`
	TableAssignment     *string    `json:"table_assignment,omitempty" db:"table_assignment"`
	Notes               *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
}

// RSVPSubmission is a response submitted through the public microsite form.
type RSVPSubmission struct {
	Name      string
	Email     string
	Attending bool
	Dietary   string
	Notes     string
}
