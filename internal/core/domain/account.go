package domain

import "time"

// Account models a registered user of the site.
//
// PasswordHash is a bcrypt digest and never leaves the process; the plaintext
// password exists only for the duration of a register or login request.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
