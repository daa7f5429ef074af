package model

import "time"

// OutboundEmail journals one campaign delivery attempt to one recipient.
type OutboundEmail struct {
	ID         int       `db:"id" json:"id"`
	Recipient  string    `db:"recipient" json:"recipient"`
	Subject    string    `db:"subject" json:"subject"`
	Body       string    `db:"body" json:"body"`
	Status     string    `db:"status" json:"status"` // sent, failed
	LastError  string    `db:"last_error,omitempty" json:"last_error,omitempty"`
	RetryCount int       `db:"retry_count" json:"retry_count"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
