package entities

import "time"

// User is an operator account for the shop's back office.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// PasswordHash is a bcrypt hash; the clear-text password never leaves the
// auth use case.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
