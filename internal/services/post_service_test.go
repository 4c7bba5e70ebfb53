package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"verba/internal/models"
	"verba/internal/store"
)

type mockPostStore struct {
	mock.Mock
}

func (m *mockPostStore) CreatePost(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostStore) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if post := args.Get(0); post != nil {
		return post.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostStore) CountPosts(ctx context.Context, filter store.PostFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostStore) ListPosts(ctx context.Context, filter store.PostFilter, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, filter, limit, offset)
	if posts := args.Get(0); posts != nil {
		return posts.([]*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockPostStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestListProcessedPosts(t *testing.T) {
	ms := new(mockPostStore)
	svc := NewPostService(ms)

	filter := store.PostFilter{Category: "tech", Keywords: []string{"python"}}
	page := []*models.Post{
		{ID: 1, Category: "tech", Content: "SQLAlchemy is great for Python ORM."},
		{ID: 3, Category: "tech", Content: "Async Python with asyncio is powerful."},
	}
	ms.On("CountPosts", mock.Anything, filter).Return(int64(4), nil).Once()
	ms.On("ListPosts", mock.Anything, filter, 2, 0).Return(page, nil).Once()

	total, posts, err := svc.ListProcessedPosts(context.Background(), ListPostsParams{
		Category: "tech",
		Keywords: []string{"python"},
		Limit:    2,
		Offset:   0,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), total)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(1), posts[0].ID)
	assert.Equal(t, "tech", posts[0].Category)
	assert.Equal(t, map[string]int{"sqlalchemy": 1, "is": 1, "great": 1, "for": 1, "python": 1, "orm": 1},
		posts[0].WordFrequency)
	assert.Equal(t, int64(3), posts[1].ID)
	assert.Equal(t, 1, posts[1].WordFrequency["async"])

	ms.AssertExpectations(t)
}

func TestListProcessedPostsEmptyPage(t *testing.T) {
	ms := new(mockPostStore)
	svc := NewPostService(ms)

	filter := store.PostFilter{}
	ms.On("CountPosts", mock.Anything, filter).Return(int64(6), nil).Once()
	ms.On("ListPosts", mock.Anything, filter, 10, 100).Return([]*models.Post{}, nil).Once()

	total, posts, err := svc.ListProcessedPosts(context.Background(), ListPostsParams{Limit: 10, Offset: 100})
	require.NoError(t, err)

	assert.Equal(t, int64(6), total)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	ms.AssertExpectations(t)
}

func TestListProcessedPostsEmptyContent(t *testing.T) {
	ms := new(mockPostStore)
	svc := NewPostService(ms)

	filter := store.PostFilter{}
	ms.On("CountPosts", mock.Anything, filter).Return(int64(1), nil).Once()
	ms.On("ListPosts", mock.Anything, filter, 10, 0).
		Return([]*models.Post{{ID: 7, Category: "misc", Content: ""}}, nil).Once()

	_, posts, err := svc.ListProcessedPosts(context.Background(), ListPostsParams{Limit: 10})
	require.NoError(t, err)

	require.Len(t, posts, 1)
	assert.NotNil(t, posts[0].WordFrequency)
	assert.Empty(t, posts[0].WordFrequency)
	ms.AssertExpectations(t)
}

func TestListProcessedPostsCountError(t *testing.T) {
	ms := new(mockPostStore)
	svc := NewPostService(ms)

	storeErr := errors.New("connection refused")
	ms.On("CountPosts", mock.Anything, mock.Anything).Return(int64(0), storeErr).Once()

	_, _, err := svc.ListProcessedPosts(context.Background(), ListPostsParams{Limit: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
	ms.AssertNotCalled(t, "ListPosts")
}

func TestListProcessedPostsPageError(t *testing.T) {
	ms := new(mockPostStore)
	svc := NewPostService(ms)

	storeErr := errors.New("connection refused")
	ms.On("CountPosts", mock.Anything, mock.Anything).Return(int64(2), nil).Once()
	ms.On("ListPosts", mock.Anything, mock.Anything, 10, 0).Return(nil, storeErr).Once()

	_, _, err := svc.ListProcessedPosts(context.Background(), ListPostsParams{Limit: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
}

func TestAddPost(t *testing.T) {
	ms := new(mockPostStore)
	svc := NewPostService(ms)

	ms.On("CreatePost", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		p.ID = 42
		return p.Category == "tech" && p.Content == "hello"
	})).Return(nil).Once()

	post, err := svc.AddPost(context.Background(), "tech", "hello")
	require.NoError(t, err)
	assert.Equal(t, int64(42), post.ID)
	ms.AssertExpectations(t)
}
