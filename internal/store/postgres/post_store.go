package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"verba/internal/models"
	"verba/internal/store"
)

// CreatePost inserts a new post record.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (category, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	now := time.Now()
	err := s.db.QueryRow(ctx, query, post.Category, post.Content, now, now).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (s *Store) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	query := `
		SELECT id, category, COALESCE(content, ''), created_at, updated_at
		FROM posts
		WHERE id = $1`
	post := &models.Post{}
	err := s.db.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.Category, &post.Content, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post by id %d: %w", id, err)
	}
	return post, nil
}

// CountPosts counts every post matching the filter, ignoring pagination.
func (s *Store) CountPosts(ctx context.Context, filter store.PostFilter) (int64, error) {
	whereClause, args := buildFilterClause(filter)
	query := `SELECT COUNT(*) FROM posts` + whereClause

	var total int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return total, nil
}

// ListPosts returns one page of matching posts ordered by ascending id.
func (s *Store) ListPosts(ctx context.Context, filter store.PostFilter, limit, offset int) ([]*models.Post, error) {
	whereClause, args := buildFilterClause(filter)
	query := fmt.Sprintf(`
		SELECT id, category, COALESCE(content, ''), created_at, updated_at
		FROM posts%s
		ORDER BY id ASC
		LIMIT $%d OFFSET $%d`, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		err := rows.Scan(&post.ID, &post.Category, &post.Content, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return posts, nil
}

// buildFilterClause renders the filter as a WHERE clause with numbered
// placeholders. Category matches by exact equality; each keyword requires
// case-insensitive substring containment in the content (AND semantics).
func buildFilterClause(filter store.PostFilter) (string, []interface{}) {
	var conds []string
	args := []interface{}{}
	argID := 1

	if filter.Category != "" {
		conds = append(conds, fmt.Sprintf("category = $%d", argID))
		args = append(args, filter.Category)
		argID++
	}
	for _, keyword := range filter.Keywords {
		if keyword == "" {
			continue
		}
		conds = append(conds, fmt.Sprintf("COALESCE(content, '') ILIKE '%%' || $%d || '%%'", argID))
		args = append(args, escapeLikePattern(keyword))
		argID++
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLikePattern neutralizes LIKE metacharacters in user-supplied
// keywords so they match literally.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
