package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"verba/internal/models"
	"verba/internal/store"
)

// CreatePost inserts a new post record and fills in its assigned id.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (category, content, created_at, updated_at)
		VALUES (?, ?, ?, ?)`

	now := time.Now()
	res, err := s.db.ExecContext(ctx, query, post.Category, post.Content, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted post id: %w", err)
	}
	post.ID = id
	post.CreatedAt = now
	post.UpdatedAt = now
	return nil
}

func (s *Store) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	query := `
		SELECT id, category, COALESCE(content, ''), created_at, updated_at
		FROM posts
		WHERE id = ?`
	post := &models.Post{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Category, &post.Content, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return total, nil
}

// ListPosts returns one page of matching posts ordered by ascending id.
func (s *Store) ListPosts(ctx context.Context, filter store.PostFilter, limit, offset int) ([]*models.Post, error) {
	whereClause, args := buildFilterClause(filter)
	query := `
		SELECT id, category, COALESCE(content, ''), created_at, updated_at
		FROM posts` + whereClause + `
		ORDER BY id ASC
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
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

// buildFilterClause renders the filter as a WHERE clause. Keyword
// containment uses instr on lowercased text, so user-supplied keywords
// never act as patterns.
func buildFilterClause(filter store.PostFilter) (string, []interface{}) {
	var conds []string
	args := []interface{}{}

	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	for _, keyword := range filter.Keywords {
		if keyword == "" {
			continue
		}
		conds = append(conds, "instr(lower(COALESCE(content, '')), ?) > 0")
		args = append(args, strings.ToLower(keyword))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
