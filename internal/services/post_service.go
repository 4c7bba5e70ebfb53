package services

import (
	"context"
	"fmt"

	"verba/internal/models"
	"verba/internal/store"
	"verba/internal/wordfreq"
)

// ListPostsParams carries the filter and pagination for one listing call.
// The boundary layer validates ranges before constructing it.
type ListPostsParams struct {
	Category string
	Keywords []string
	Limit    int
	Offset   int
}

// PostService is the query pipeline: filter, count, paginate, tokenize.
// It is stateless and safe for concurrent use.
type PostService struct {
	store store.PostStore
}

func NewPostService(ps store.PostStore) *PostService {
	return &PostService{store: ps}
}

// ListProcessedPosts returns the total number of posts matching the filter
// across the whole store, plus one page of matches (ascending id) with the
// word-frequency mapping of each post's content.
//
// An offset past the last match yields the true total with an empty page;
// the returned slice is never nil.
func (s *PostService) ListProcessedPosts(ctx context.Context, params ListPostsParams) (int64, []models.ProcessedPost, error) {
	filter := store.PostFilter{
		Category: params.Category,
		Keywords: params.Keywords,
	}

	total, err := s.store.CountPosts(ctx, filter)
	if err != nil {
		return 0, nil, fmt.Errorf("count posts: %w", err)
	}

	page, err := s.store.ListPosts(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		return 0, nil, fmt.Errorf("fetch posts page: %w", err)
	}

	processed := make([]models.ProcessedPost, 0, len(page))
	for _, post := range page {
		processed = append(processed, models.ProcessedPost{
			ID:            post.ID,
			Category:      post.Category,
			WordFrequency: wordfreq.Frequencies(post.Content),
		})
	}
	return total, processed, nil
}

// AddPost stores a new post.
func (s *PostService) AddPost(ctx context.Context, category, content string) (*models.Post, error) {
	post := &models.Post{Category: category, Content: content}
	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("add post: %w", err)
	}
	return post, nil
}

// GetPost fetches a single post by id.
func (s *PostService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	return s.store.GetPost(ctx, id)
}
