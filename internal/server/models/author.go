package models

import "time"

// Author is a book author record. UserID is the account that created the
// record.
type Author struct {
	ID        int64
	UserID    int64
	FirstName string
	LastName  string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
