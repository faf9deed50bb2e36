package models

import "time"

type Post struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	Content     string    `json:"content" db:"content"`
	CategoryID  *int64    `json:"category_id" db:"category_id"`
	AuthorID    int64     `json:"author_id" db:"author_id"`
	Published   bool      `json:"published" db:"published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Populated on reads when the related rows exist.
	Category *Category    `json:"category,omitempty"`
	Author   *UserSummary `json:"author,omitempty"`
}
