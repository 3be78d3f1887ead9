package models

import "time"

// RegistrationInput is a registration submission after form parsing.
// Password is kept verbatim.
type RegistrationInput struct {
	FirstName string
	LastName  string
	Phone     string
	Username  string
	Password  string
}

// UserAccount represents a user record in the database
type UserAccount struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	FirstName    string    `json:"first_name" db:"first_name"`       // First name
	LastName     string    `json:"last_name" db:"last_name"`         // Last name
	Phone        string    `json:"phone" db:"phone"`                 // Unique 10-digit phone
	Username     string    `json:"username" db:"username"`           // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt hash
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"` // Registration timestamp
	Active       bool      `json:"active" db:"active"`               // Active flag
}
