package store

import (
	"context"

	"verba/internal/models"
)

// PostFilter is a composable predicate over stored posts. The zero value
// matches every post.
type PostFilter struct {
	// Category requires exact string equality when non-empty.
	Category string
	// Keywords requires case-insensitive substring containment of every
	// entry in the post content (logical AND). Empty entries are ignored.
	Keywords []string
}

// PostStore is the persistence contract consumed by the query pipeline.
//
// CountPosts evaluates the filter over the entire store, ignoring
// pagination; ListPosts returns one page of matches ordered by ascending
// id. The two calls are not required to observe a single snapshot.
type PostStore interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CountPosts(ctx context.Context, filter PostFilter) (int64, error)
	ListPosts(ctx context.Context, filter PostFilter, limit, offset int) ([]*models.Post, error)

	Ping(ctx context.Context) error
	Close() error
}
