package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verba/internal/models"
	"verba/internal/store"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.InitSchema(context.Background()))
	return s
}

func seedSamplePosts(t *testing.T, s *Store) {
	t.Helper()
	samples := []models.Post{
		{Category: "tech", Content: "SQLAlchemy is great for Python ORM."},
		{Category: "news", Content: "FastAPI provides amazing speed."},
		{Category: "tech", Content: "Async Python with asyncio is powerful."},
		{Category: "tech", Content: "Another post about Python."},
		{Category: "life", Content: "Simple life hacks."},
		{Category: "tech", Content: "More Python content here."},
	}
	for i := range samples {
		require.NoError(t, s.CreatePost(context.Background(), &samples[i]))
	}
}

func collectIDs(posts []*models.Post) []int64 {
	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func TestCreateAndGetPost(t *testing.T) {
	s := setupTestStore(t)

	post := &models.Post{Category: "tech", Content: "hello world"}
	require.NoError(t, s.CreatePost(context.Background(), post))
	assert.NotZero(t, post.ID)

	got, err := s.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, "tech", got.Category)
	assert.Equal(t, "hello world", got.Content)
}

func TestGetPostNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetPost(context.Background(), 12345)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestCountAndListNoFilter(t *testing.T) {
	s := setupTestStore(t)
	seedSamplePosts(t, s)

	total, err := s.CountPosts(context.Background(), store.PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	posts, err := s.ListPosts(context.Background(), store.PostFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, collectIDs(posts))
}

func TestFilterByCategory(t *testing.T) {
	s := setupTestStore(t)
	seedSamplePosts(t, s)

	filter := store.PostFilter{Category: "tech"}
	total, err := s.CountPosts(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	posts, err := s.ListPosts(context.Background(), filter, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4, 6}, collectIDs(posts))
	for _, p := range posts {
		assert.Equal(t, "tech", p.Category)
	}
}

func TestFilterByNonexistentCategory(t *testing.T) {
	s := setupTestStore(t)
	seedSamplePosts(t, s)

	filter := store.PostFilter{Category: "nonexistent"}
	total, err := s.CountPosts(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	posts, err := s.ListPosts(context.Background(), filter, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestKeywordFilterCaseInsensitive(t *testing.T) {
	s := setupTestStore(t)
	seedSamplePosts(t, s)

	for _, keyword := range []string{"python", "Python", "PYTHON"} {
		filter := store.PostFilter{Keywords: []string{keyword}}
		total, err := s.CountPosts(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total, "keyword %q", keyword)

		posts, err := s.ListPosts(context.Background(), filter, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3, 4, 6}, collectIDs(posts))
	}
}

func TestKeywordFilterConjunctive(t *testing.T) {
	s := setupTestStore(t)
	seedSamplePosts(t, s)

	// Only post 3 contains both "python" and "async".
	filter := store.PostFilter{Keywords: []string{"python", "async"}}
	total, err := s.CountPosts(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	posts, err := s.ListPosts(context.Background(), filter, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, collectIDs(posts))
}

func TestCategoryAndKeywordsCombined(t *testing.T) {
	s := setupTestStore(t)
	seedSamplePosts(t, s)

	filter := store.PostFilter{Category: "tech", Keywords: []string{"python"}}
	total, err := s.CountPosts(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestKeywordIsNotAPattern(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.CreatePost(context.Background(), &models.Post{Category: "stats", Content: "100% sure about this"}))
	require.NoError(t, s.CreatePost(context.Background(), &models.Post{Category: "stats", Content: "100 reasons to be sure"}))

	filter := store.PostFilter{Keywords: []string{"100%"}}
	total, err := s.CountPosts(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	filter = store.PostFilter{Keywords: []string{"1_0"}}
	total, err = s.CountPosts(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestPaginationIsStableAndNonOverlapping(t *testing.T) {
	s := setupTestStore(t)
	seedSamplePosts(t, s)

	var all []int64
	for offset := 0; offset < 6; offset += 2 {
		posts, err := s.ListPosts(context.Background(), store.PostFilter{}, 2, offset)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
		all = append(all, collectIDs(posts)...)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, all)
}

func TestOffsetBeyondMatchCount(t *testing.T) {
	s := setupTestStore(t)
	seedSamplePosts(t, s)

	total, err := s.CountPosts(context.Background(), store.PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	posts, err := s.ListPosts(context.Background(), store.PostFilter{}, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestEmptyKeywordsAreIgnored(t *testing.T) {
	s := setupTestStore(t)
	seedSamplePosts(t, s)

	filter := store.PostFilter{Keywords: []string{"", "python", ""}}
	total, err := s.CountPosts(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}
