package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedloop/feedloop/pkg/config"
	"github.com/feedloop/feedloop/pkg/domain"
)

//go:generate moq -out mocks/fetch_runner.go -pkg mocks -skip-ensure -fmt goimports . FetchRunner
//go:generate moq -out mocks/cleanup_runner.go -pkg mocks -skip-ensure -fmt goimports . CleanupRunner

// FetchRunner runs one full fetch cycle over every enabled feed
type FetchRunner interface {
	FetchAll(ctx context.Context) (domain.RunSummary, error)
}

// CleanupRunner runs one retention cleanup pass
type CleanupRunner interface {
	Cleanup(ctx context.Context, daysToKeep int) (int64, error)
}

// Scheduler owns the two periodic jobs: the fetch job on a fixed interval
// and the cleanup job once a day at a configured wall-clock time. It is
// opt-in: unless enabled by configuration Start arms nothing, and manual
// triggers run the same job bodies as the timers.
type Scheduler struct {
	fetcher FetchRunner
	cleaner CleanupRunner

	enabled       bool
	fetchInterval time.Duration
	cleanupTime   config.TimeOfDay
	location      *time.Location
	retentionDays int

	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu             sync.Mutex
	running        bool
	fetchRunning   bool
	cleanupRunning bool
}

// Params holds scheduler construction parameters
type Params struct {
	Fetcher  FetchRunner
	Cleaner  CleanupRunner
	Schedule config.ScheduleConfig
}

// NewScheduler creates a scheduler from validated configuration
func NewScheduler(params Params) *Scheduler {
	loc, err := time.LoadLocation(params.Schedule.Timezone)
	if err != nil {
		lgr.Printf("[WARN] unknown timezone %q, falling back to UTC", params.Schedule.Timezone)
		loc = time.UTC
	}
	tod, err := config.ParseTimeOfDay(params.Schedule.CleanupTime)
	if err != nil {
		lgr.Printf("[WARN] invalid cleanup time %q, falling back to 03:30", params.Schedule.CleanupTime)
		tod = config.TimeOfDay{Hour: 3, Minute: 30}
	}

	return &Scheduler{
		fetcher:       params.Fetcher,
		cleaner:       params.Cleaner,
		enabled:       params.Schedule.Enabled,
		fetchInterval: params.Schedule.FetchInterval,
		cleanupTime:   tod,
		location:      loc,
		retentionDays: params.Schedule.RetentionDays,
	}
}

// Start arms both jobs. A disabled scheduler stays stopped and only reacts
// to manual triggers.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.enabled {
		lgr.Printf("[INFO] scheduler disabled by configuration")
		return
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.fetchJob(ctx)

	s.wg.Add(1)
	go s.cleanupJob(ctx)

	lgr.Printf("[INFO] scheduler started: fetch every %v, cleanup daily at %02d:%02d %s, retention %dd",
		s.fetchInterval, s.cleanupTime.Hour, s.cleanupTime.Minute, s.location, s.retentionDays)
}

// Stop gracefully stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// fetchJob fires the fetch run on a fixed interval, first run immediately
func (s *Scheduler) fetchJob(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.fetchInterval)
	defer ticker.Stop()

	s.runFetch(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runFetch(ctx)
		}
	}
}

// cleanupJob fires the cleanup run once a day at the configured time
func (s *Scheduler) cleanupJob(ctx context.Context) {
	defer s.wg.Done()

	for {
		wait := time.Until(s.nextCleanup(time.Now()))
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.runCleanup(ctx, s.retentionDays)
		}
	}
}

// nextCleanup returns the next occurrence of the configured cleanup time
func (s *Scheduler) nextCleanup(now time.Time) time.Time {
	local := now.In(s.location)
	next := time.Date(local.Year(), local.Month(), local.Day(), s.cleanupTime.Hour, s.cleanupTime.Minute, 0, 0, s.location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// runFetch is the shared fetch job body used by the ticker and TriggerFetch
func (s *Scheduler) runFetch(ctx context.Context) (domain.RunSummary, error) {
	s.mu.Lock()
	s.fetchRunning = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.fetchRunning = false
		s.mu.Unlock()
	}()

	summary, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		lgr.Printf("[ERROR] fetch run failed: %v", err)
	}
	return summary, err
}

// runCleanup is the shared cleanup job body used by the timer and TriggerCleanup
func (s *Scheduler) runCleanup(ctx context.Context, days int) (int64, error) {
	s.mu.Lock()
	s.cleanupRunning = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.cleanupRunning = false
		s.mu.Unlock()
	}()

	deleted, err := s.cleaner.Cleanup(ctx, days)
	if err != nil {
		lgr.Printf("[ERROR] cleanup run failed: %v", err)
	}
	return deleted, err
}

// TriggerFetch runs the fetch job body immediately, outside the schedule
func (s *Scheduler) TriggerFetch(ctx context.Context) (domain.RunSummary, error) {
	lgr.Printf("[INFO] fetch triggered manually")
	return s.runFetch(ctx)
}

// TriggerCleanup runs the cleanup job body immediately. A non-positive
// daysToKeep falls back to the configured retention window.
func (s *Scheduler) TriggerCleanup(ctx context.Context, daysToKeep int) (int64, error) {
	if daysToKeep <= 0 {
		daysToKeep = s.retentionDays
	}
	lgr.Printf("[INFO] cleanup triggered manually, retention %dd", daysToKeep)
	return s.runCleanup(ctx, daysToKeep)
}

// JobStatus describes one periodic job
type JobStatus struct {
	Armed   bool `json:"armed"`
	Running bool `json:"running"`
}

// Status describes the scheduler state
type Status struct {
	Enabled       bool      `json:"enabled"`
	Running       bool      `json:"running"`
	FetchJob      JobStatus `json:"fetch_job"`
	CleanupJob    JobStatus `json:"cleanup_job"`
	Timezone      string    `json:"timezone"`
	RetentionDays int       `json:"retention_days"`
}

// GetStatus reports whether each job is armed and currently running
func (s *Scheduler) GetStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Enabled:       s.enabled,
		Running:       s.running,
		FetchJob:      JobStatus{Armed: s.running, Running: s.fetchRunning},
		CleanupJob:    JobStatus{Armed: s.running, Running: s.cleanupRunning},
		Timezone:      s.location.String(),
		RetentionDays: s.retentionDays,
	}
}
