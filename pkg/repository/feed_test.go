package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedloop/feedloop/pkg/domain"
)

func TestFeedRepository_CreateFeed(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{
		URL:           "https://example.com/feed.xml",
		Title:         "Test Feed",
		Description:   "A feed for testing",
		Link:          "https://example.com",
		Language:      "en",
		Enabled:       true,
		FetchInterval: 30 * time.Minute,
	}

	err := repos.Feed.CreateFeed(context.Background(), feed)
	require.NoError(t, err)
	assert.NotZero(t, feed.ID)

	got, err := repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/feed.xml", got.URL)
	assert.Equal(t, "Test Feed", got.Title)
	assert.Equal(t, 30*time.Minute, got.FetchInterval)
	assert.True(t, got.Enabled)
	assert.Nil(t, got.LastFetched)
	assert.Zero(t, got.ErrorCount)
}

func TestFeedRepository_CreateFeed_DefaultInterval(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{URL: "https://example.com/feed.xml", Enabled: true}
	err := repos.Feed.CreateFeed(context.Background(), feed)
	require.NoError(t, err)

	got, err := repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, got.FetchInterval)
}

func TestFeedRepository_CreateFeed_DuplicateURL(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{URL: "https://example.com/feed.xml", Enabled: true}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))

	dup := &domain.Feed{URL: "https://example.com/feed.xml", Enabled: true}
	err := repos.Feed.CreateFeed(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, isConflictError(err))
}

func TestFeedRepository_GetFeeds(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	enabled := &domain.Feed{URL: "https://example.com/a.xml", Title: "A", Enabled: true}
	disabled := &domain.Feed{URL: "https://example.com/b.xml", Title: "B", Enabled: false}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), enabled))
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), disabled))

	all, err := repos.Feed.GetFeeds(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := repos.Feed.GetFeeds(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "A", active[0].Title)
}

func TestFeedRepository_UpdateFeedFetched(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{URL: "https://example.com/feed.xml", Enabled: true}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))

	// accumulate some errors first
	require.NoError(t, repos.Feed.UpdateFeedError(context.Background(), feed.ID, "fetch failed"))
	require.NoError(t, repos.Feed.UpdateFeedError(context.Background(), feed.ID, "fetch failed again"))

	got, err := repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ErrorCount)
	assert.Equal(t, "fetch failed again", got.LastError)
	require.NotNil(t, got.LastFetched)

	// a successful fetch resets the error state
	require.NoError(t, repos.Feed.UpdateFeedFetched(context.Background(), feed.ID))

	got, err = repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ErrorCount)
	assert.Empty(t, got.LastError)
	require.NotNil(t, got.LastFetched)
}

func TestFeedRepository_UpdateFeedError_NeverDisables(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{URL: "https://example.com/feed.xml", Enabled: true}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))

	for i := 0; i < 10; i++ {
		require.NoError(t, repos.Feed.UpdateFeedError(context.Background(), feed.ID, "persistent failure"))
	}

	got, err := repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.ErrorCount)
	assert.True(t, got.Enabled, "repeated errors must not disable the feed")
}

func TestFeedRepository_UpdateFeedStatus(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{URL: "https://example.com/feed.xml", Enabled: true}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))

	require.NoError(t, repos.Feed.UpdateFeedStatus(context.Background(), feed.ID, false))
	got, err := repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	require.NoError(t, repos.Feed.UpdateFeedStatus(context.Background(), feed.ID, true))
	got, err = repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.True(t, got.Enabled)
}

func TestFeedRepository_DeleteFeed_CascadesArticles(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{URL: "https://example.com/feed.xml", Enabled: true}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))

	candidates := []domain.Candidate{
		{GUID: "g1", Title: "One", Link: "https://example.com/1", Content: "c", Published: time.Now()},
		{GUID: "g2", Title: "Two", Link: "https://example.com/2", Content: "c", Published: time.Now()},
	}
	_, err := repos.Article.CreateArticles(context.Background(), feed.ID, candidates)
	require.NoError(t, err)

	count, err := repos.Article.CountArticles(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repos.Feed.DeleteFeed(context.Background(), feed.ID))

	count, err = repos.Article.CountArticles(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, count, "articles must go with their feed")

	_, err = repos.Feed.GetFeed(context.Background(), feed.ID)
	require.Error(t, err)
}
