package repository

import "blogapi/models"

type PostRepository interface {
	CreatePost(post *models.Post) error
	// GetPostByID returns nil, nil when no row matches. Category and author
	// summaries are embedded when present.
	GetPostByID(id int64) (*models.Post, error)
	// GetPublishedPosts returns published posts, newest first.
	GetPublishedPosts() ([]*models.Post, error)
	// GetAllPosts returns every post including unpublished, newest first.
	GetAllPosts() ([]*models.Post, error)
	UpdatePost(post *models.Post) error
	// SetPublished flips the published flag (soft delete / restore).
	SetPublished(id int64, published bool) error
	DeletePost(id int64) error
}
