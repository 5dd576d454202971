package server

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedloop/feedloop/pkg/domain"
	"github.com/feedloop/feedloop/pkg/feed"
	"github.com/feedloop/feedloop/pkg/scheduler"
)

func TestListFeedsHandler(t *testing.T) {
	srv, _, _, feeds, _ := newTestServer()
	feeds.GetFeedsFunc = func(ctx context.Context, enabledOnly bool) ([]domain.Feed, error) {
		assert.False(t, enabledOnly)
		return []domain.Feed{
			{ID: 1, URL: "https://example.com/a.xml", Title: "A"},
			{ID: 2, URL: "https://example.com/b.xml", Title: "B"},
		}, nil
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/feeds")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.Feed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Title)
}

func TestCreateFeedHandler(t *testing.T) {
	srv, _, _, feeds, validator := newTestServer()
	validator.ValidateFunc = func(ctx context.Context, url string) (*feed.ValidationResult, error) {
		return &feed.ValidationResult{
			Valid:       true,
			Title:       "Validated Feed",
			Description: "desc",
			Link:        "https://example.com",
			Language:    "en",
		}, nil
	}
	feeds.CreateFeedFunc = func(ctx context.Context, f *domain.Feed) error {
		f.ID = 42
		return nil
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	body := bytes.NewBufferString(`{"url": "https://example.com/feed.xml", "fetch_interval": 1800}`)
	resp, err := http.Post(ts.URL+"/api/v1/feeds", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got struct {
		Feed    domain.Feed `json:"feed"`
		Warning string      `json:"warning"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, int64(42), got.Feed.ID)
	assert.Equal(t, "Validated Feed", got.Feed.Title)
	assert.True(t, got.Feed.Enabled)
	assert.Empty(t, got.Warning)

	require.Len(t, feeds.CreateFeedCalls(), 1)
	created := feeds.CreateFeedCalls()[0].F
	assert.Equal(t, "https://example.com/feed.xml", created.URL)
}

func TestCreateFeedHandler_TransientWarning(t *testing.T) {
	srv, _, _, feeds, validator := newTestServer()
	validator.ValidateFunc = func(ctx context.Context, url string) (*feed.ValidationResult, error) {
		return &feed.ValidationResult{
			Valid:       true,
			Warning:     "unexpected status code: 429",
			Title:       "unable to fetch yet",
			Description: "unable to fetch yet",
		}, nil
	}
	feeds.CreateFeedFunc = func(ctx context.Context, f *domain.Feed) error { return nil }

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	body := bytes.NewBufferString(`{"url": "https://example.com/feed.xml"}`)
	resp, err := http.Post(ts.URL+"/api/v1/feeds", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Contains(t, got["warning"], "429")
}

func TestCreateFeedHandler_ValidationRejected(t *testing.T) {
	srv, _, _, feeds, validator := newTestServer()
	validator.ValidateFunc = func(ctx context.Context, url string) (*feed.ValidationResult, error) {
		return nil, fmt.Errorf("unexpected status code: 404")
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	body := bytes.NewBufferString(`{"url": "https://example.com/missing.xml"}`)
	resp, err := http.Post(ts.URL+"/api/v1/feeds", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, feeds.CreateFeedCalls())
}

func TestCreateFeedHandler_BadRequests(t *testing.T) {
	srv, _, _, _, _ := newTestServer()
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	tests := []struct {
		name string
		body string
	}{
		{"empty url", `{"url": ""}`},
		{"not json", `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/v1/feeds", "application/json", bytes.NewBufferString(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestFetchFeedHandler(t *testing.T) {
	srv, orch, _, _, _ := newTestServer()
	orch.FetchFeedFunc = func(ctx context.Context, feedID int64) (int, error) {
		assert.Equal(t, int64(7), feedID)
		return 3, nil
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/feeds/7/fetch", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got fetchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Success)
	assert.Equal(t, 3, got.TotalFetched)
	assert.Equal(t, 1, got.FeedsProcessed)
	assert.Zero(t, got.TotalErrors)
}

func TestFetchFeedHandler_FeedError(t *testing.T) {
	srv, orch, _, _, _ := newTestServer()
	orch.FetchFeedFunc = func(ctx context.Context, feedID int64) (int, error) {
		return 0, fmt.Errorf("parse feed: unexpected status code: 500")
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/feeds/7/fetch", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()

	// the error is recorded on the feed, the request itself succeeds
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got fetchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Success)
	assert.Equal(t, 1, got.TotalErrors)
	assert.Equal(t, 1, got.FeedsProcessed)
}

func TestFetchFeedHandler_NotFound(t *testing.T) {
	srv, orch, _, _, _ := newTestServer()
	orch.FetchFeedFunc = func(ctx context.Context, feedID int64) (int, error) {
		return 0, fmt.Errorf("get feed %d: %w", feedID, sql.ErrNoRows)
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/feeds/999/fetch", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFetchFeedHandler_BadID(t *testing.T) {
	srv, _, _, _, _ := newTestServer()
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/feeds/abc/fetch", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFetchAllHandler(t *testing.T) {
	srv, orch, _, _, _ := newTestServer()
	orch.FetchAllFunc = func(ctx context.Context) (domain.RunSummary, error) {
		return domain.RunSummary{TotalFetched: 10, TotalErrors: 2, FeedsProcessed: 5}, nil
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/feeds/fetch-all", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got fetchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Success)
	assert.Equal(t, 10, got.TotalFetched)
	assert.Equal(t, 2, got.TotalErrors)
	assert.Equal(t, 5, got.FeedsProcessed)
}

func TestFetchAllHandler_InfrastructureFailure(t *testing.T) {
	srv, orch, _, _, _ := newTestServer()
	orch.FetchAllFunc = func(ctx context.Context) (domain.RunSummary, error) {
		return domain.RunSummary{}, fmt.Errorf("get enabled feeds: database is locked")
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/feeds/fetch-all", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestFeedStatusHandler(t *testing.T) {
	srv, _, _, feeds, _ := newTestServer()
	feeds.UpdateFeedStatusFunc = func(ctx context.Context, feedID int64, enabled bool) error { return nil }

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	body := bytes.NewBufferString(`{"enabled": false}`)
	resp, err := http.Post(ts.URL+"/api/v1/feeds/3/status", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, feeds.UpdateFeedStatusCalls(), 1)
	assert.Equal(t, int64(3), feeds.UpdateFeedStatusCalls()[0].FeedID)
	assert.False(t, feeds.UpdateFeedStatusCalls()[0].Enabled)
}

func TestDeleteFeedHandler(t *testing.T) {
	srv, _, _, feeds, _ := newTestServer()
	feeds.DeleteFeedFunc = func(ctx context.Context, id int64) error { return nil }

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/feeds/3", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Len(t, feeds.DeleteFeedCalls(), 1)
	assert.Equal(t, int64(3), feeds.DeleteFeedCalls()[0].ID)
}

func TestSchedulerStatusHandler(t *testing.T) {
	srv, _, sched, _, _ := newTestServer()
	sched.GetStatusFunc = func() scheduler.Status {
		return scheduler.Status{
			Enabled:       true,
			Running:       true,
			FetchJob:      scheduler.JobStatus{Armed: true},
			Timezone:      "UTC",
			RetentionDays: 30,
		}
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/scheduler/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got scheduler.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Enabled)
	assert.True(t, got.FetchJob.Armed)
	assert.Equal(t, 30, got.RetentionDays)
}

func TestTriggerFetchHandler(t *testing.T) {
	srv, _, sched, _, _ := newTestServer()
	sched.TriggerFetchFunc = func(ctx context.Context) (domain.RunSummary, error) {
		return domain.RunSummary{TotalFetched: 4, FeedsProcessed: 2}, nil
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/scheduler/trigger-fetch", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got fetchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 4, got.TotalFetched)
}

func TestTriggerCleanupHandler(t *testing.T) {
	srv, _, sched, _, _ := newTestServer()
	sched.TriggerCleanupFunc = func(ctx context.Context, daysToKeep int) (int64, error) {
		return 17, nil
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	body := bytes.NewBufferString(`{"days_to_keep": 7}`)
	resp, err := http.Post(ts.URL+"/api/v1/scheduler/trigger-cleanup", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, float64(17), got["deleted"])

	require.Len(t, sched.TriggerCleanupCalls(), 1)
	assert.Equal(t, 7, sched.TriggerCleanupCalls()[0].DaysToKeep)
}

func TestTriggerCleanupHandler_EmptyBody(t *testing.T) {
	srv, _, sched, _, _ := newTestServer()
	sched.TriggerCleanupFunc = func(ctx context.Context, daysToKeep int) (int64, error) {
		assert.Zero(t, daysToKeep, "empty body means configured default")
		return 0, nil
	}

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/scheduler/trigger-cleanup", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
