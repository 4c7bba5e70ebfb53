package models

import "time"

// Post is a stored record in the posts table.
type Post struct {
	ID        int64     `db:"id"`
	Category  string    `db:"category"`
	Content   string    `db:"content"` // free text, empty when the column is NULL
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ProcessedPost is the read-side projection of a Post: identity fields plus
// the word-frequency mapping derived from its content. It is built per
// request and never persisted.
type ProcessedPost struct {
	ID            int64          `json:"id"`
	Category      string         `json:"category"`
	WordFrequency map[string]int `json:"word_frequency"`
}
