package domain

import "time"

// Identity is the minimal authenticated profile held for a session.
// It is what a client persists locally and what the webhook payload carries.
type Identity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmailOrPhone string `json:"email_or_phone"`
}

// Account models a stored login record in the user_login collection.
// The secret is kept as a bcrypt hash, never in plaintext.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	EmailOrPhone string    `json:"email_or_phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity returns the session-facing view of the account.
func (a *Account) Identity() Identity {
	return Identity{
		ID:           a.ID,
		Name:         a.Name,
		EmailOrPhone: a.EmailOrPhone,
	}
}
