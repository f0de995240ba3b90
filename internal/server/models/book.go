package models

import "time"

// Book belongs to an Author. Cover holds a URL to the cover image. UserID is
// the account that created the record.
type Book struct {
	ID        int64
	UserID    int64
	AuthorID  int64
	Title     string
	Year      int
	Cover     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
