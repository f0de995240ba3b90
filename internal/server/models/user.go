// Package models defines the persistent entities of the bookstore.
package models

import "time"

// User is a registered account. PasswordHash is the bcrypt hash of the
// password; the plaintext is never stored.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}
