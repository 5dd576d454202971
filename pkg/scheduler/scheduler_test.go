package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedloop/feedloop/pkg/config"
	"github.com/feedloop/feedloop/pkg/domain"
	"github.com/feedloop/feedloop/pkg/scheduler/mocks"
)

func testSchedule() config.ScheduleConfig {
	return config.ScheduleConfig{
		Enabled:       true,
		FetchInterval: time.Hour,
		CleanupTime:   "03:30",
		Timezone:      "UTC",
		RetentionDays: 30,
		MaxPerFeed:    500,
		Concurrency:   1,
	}
}

func TestScheduler_StartStop(t *testing.T) {
	fetchDone := make(chan struct{}, 1)
	fetcher := &mocks.FetchRunnerMock{
		FetchAllFunc: func(ctx context.Context) (domain.RunSummary, error) {
			select {
			case fetchDone <- struct{}{}:
			default:
			}
			return domain.RunSummary{}, nil
		},
	}
	cleaner := &mocks.CleanupRunnerMock{
		CleanupFunc: func(ctx context.Context, daysToKeep int) (int64, error) { return 0, nil },
	}

	sched := NewScheduler(Params{Fetcher: fetcher, Cleaner: cleaner, Schedule: testSchedule()})
	sched.Start(context.Background())

	// the fetch job fires once immediately on start
	select {
	case <-fetchDone:
	case <-time.After(5 * time.Second):
		t.Fatal("initial fetch run did not happen")
	}

	status := sched.GetStatus()
	assert.True(t, status.Enabled)
	assert.True(t, status.Running)
	assert.True(t, status.FetchJob.Armed)
	assert.True(t, status.CleanupJob.Armed)

	sched.Stop()
	status = sched.GetStatus()
	assert.False(t, status.Running)
	assert.False(t, status.FetchJob.Armed)
}

func TestScheduler_Disabled(t *testing.T) {
	fetcher := &mocks.FetchRunnerMock{
		FetchAllFunc: func(ctx context.Context) (domain.RunSummary, error) {
			return domain.RunSummary{}, nil
		},
	}
	schedule := testSchedule()
	schedule.Enabled = false

	sched := NewScheduler(Params{Fetcher: fetcher, Cleaner: &mocks.CleanupRunnerMock{}, Schedule: schedule})
	sched.Start(context.Background())

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, fetcher.FetchAllCalls(), "disabled scheduler must not run jobs")

	status := sched.GetStatus()
	assert.False(t, status.Enabled)
	assert.False(t, status.Running)

	sched.Stop() // no-op, must not hang
}

func TestScheduler_DoubleStart(t *testing.T) {
	started := make(chan struct{}, 10)
	fetcher := &mocks.FetchRunnerMock{
		FetchAllFunc: func(ctx context.Context) (domain.RunSummary, error) {
			started <- struct{}{}
			return domain.RunSummary{}, nil
		},
	}

	sched := NewScheduler(Params{Fetcher: fetcher, Cleaner: &mocks.CleanupRunnerMock{}, Schedule: testSchedule()})
	sched.Start(context.Background())
	sched.Start(context.Background()) // second start is a no-op
	defer sched.Stop()

	<-started
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, fetcher.FetchAllCalls(), 1)
}

func TestScheduler_TriggerFetch(t *testing.T) {
	fetcher := &mocks.FetchRunnerMock{
		FetchAllFunc: func(ctx context.Context) (domain.RunSummary, error) {
			return domain.RunSummary{TotalFetched: 5, FeedsProcessed: 2}, nil
		},
	}

	// triggers work even on a scheduler that was never started
	schedule := testSchedule()
	schedule.Enabled = false
	sched := NewScheduler(Params{Fetcher: fetcher, Cleaner: &mocks.CleanupRunnerMock{}, Schedule: schedule})

	summary, err := sched.TriggerFetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalFetched)
	assert.Equal(t, 2, summary.FeedsProcessed)
	assert.Len(t, fetcher.FetchAllCalls(), 1)
}

func TestScheduler_TriggerCleanup(t *testing.T) {
	cleaner := &mocks.CleanupRunnerMock{
		CleanupFunc: func(ctx context.Context, daysToKeep int) (int64, error) {
			return int64(daysToKeep), nil
		},
	}
	schedule := testSchedule()
	schedule.Enabled = false
	sched := NewScheduler(Params{Fetcher: &mocks.FetchRunnerMock{}, Cleaner: cleaner, Schedule: schedule})

	// explicit retention
	deleted, err := sched.TriggerCleanup(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)

	// non-positive falls back to the configured window
	deleted, err = sched.TriggerCleanup(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(30), deleted)

	require.Len(t, cleaner.CleanupCalls(), 2)
	assert.Equal(t, 7, cleaner.CleanupCalls()[0].DaysToKeep)
	assert.Equal(t, 30, cleaner.CleanupCalls()[1].DaysToKeep)
}

func TestScheduler_TriggerFetch_PropagatesError(t *testing.T) {
	fetcher := &mocks.FetchRunnerMock{
		FetchAllFunc: func(ctx context.Context) (domain.RunSummary, error) {
			return domain.RunSummary{}, fmt.Errorf("get enabled feeds: database is locked")
		},
	}
	schedule := testSchedule()
	schedule.Enabled = false
	sched := NewScheduler(Params{Fetcher: fetcher, Cleaner: &mocks.CleanupRunnerMock{}, Schedule: schedule})

	_, err := sched.TriggerFetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestScheduler_NextCleanup(t *testing.T) {
	schedule := testSchedule()
	schedule.CleanupTime = "03:30"
	sched := NewScheduler(Params{Fetcher: &mocks.FetchRunnerMock{}, Cleaner: &mocks.CleanupRunnerMock{}, Schedule: schedule})

	// before the cleanup time: today
	now := time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC)
	next := sched.nextCleanup(now)
	assert.Equal(t, time.Date(2024, 6, 1, 3, 30, 0, 0, time.UTC), next)

	// after the cleanup time: tomorrow
	now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	next = sched.nextCleanup(now)
	assert.Equal(t, time.Date(2024, 6, 2, 3, 30, 0, 0, time.UTC), next)

	// exactly at the cleanup time: tomorrow, never a zero wait
	now = time.Date(2024, 6, 1, 3, 30, 0, 0, time.UTC)
	next = sched.nextCleanup(now)
	assert.Equal(t, time.Date(2024, 6, 2, 3, 30, 0, 0, time.UTC), next)
}

func TestScheduler_FallbackDefaults(t *testing.T) {
	schedule := testSchedule()
	schedule.Timezone = "Not/AZone"
	schedule.CleanupTime = "garbage"

	sched := NewScheduler(Params{Fetcher: &mocks.FetchRunnerMock{}, Cleaner: &mocks.CleanupRunnerMock{}, Schedule: schedule})
	assert.Equal(t, "UTC", sched.location.String())
	assert.Equal(t, config.TimeOfDay{Hour: 3, Minute: 30}, sched.cleanupTime)
}

func TestScheduler_GetStatus_ReportsRetention(t *testing.T) {
	sched := NewScheduler(Params{Fetcher: &mocks.FetchRunnerMock{}, Cleaner: &mocks.CleanupRunnerMock{}, Schedule: testSchedule()})
	status := sched.GetStatus()
	assert.Equal(t, 30, status.RetentionDays)
	assert.Equal(t, "UTC", status.Timezone)
}
