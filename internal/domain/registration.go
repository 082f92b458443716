package domain

import "time"

// Registration is one row of the booking ledger. Identity is the
// (member, session) pair; the database enforces its uniqueness.
type Registration struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SessionID int64     `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}
