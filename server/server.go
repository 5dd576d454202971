package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/feedloop/feedloop/pkg/domain"
	"github.com/feedloop/feedloop/pkg/feed"
	"github.com/feedloop/feedloop/pkg/scheduler"
)

//go:generate moq -out mocks/orchestrator.go -pkg mocks -skip-ensure -fmt goimports . Orchestrator
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/feed_registry.go -pkg mocks -skip-ensure -fmt goimports . FeedRegistry
//go:generate moq -out mocks/validator.go -pkg mocks -skip-ensure -fmt goimports . Validator

// Orchestrator runs fetch cycles on demand
type Orchestrator interface {
	FetchFeed(ctx context.Context, feedID int64) (int, error)
	FetchAll(ctx context.Context) (domain.RunSummary, error)
}

// Scheduler exposes scheduler status and manual triggers
type Scheduler interface {
	GetStatus() scheduler.Status
	TriggerFetch(ctx context.Context) (domain.RunSummary, error)
	TriggerCleanup(ctx context.Context, daysToKeep int) (int64, error)
}

// FeedRegistry is the feed management surface
type FeedRegistry interface {
	CreateFeed(ctx context.Context, f *domain.Feed) error
	GetFeeds(ctx context.Context, enabledOnly bool) ([]domain.Feed, error)
	UpdateFeedStatus(ctx context.Context, feedID int64, enabled bool) error
	DeleteFeed(ctx context.Context, id int64) error
}

// Validator checks a feed URL before registration
type Validator interface {
	Validate(ctx context.Context, url string) (*feed.ValidationResult, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Server represents the admin HTTP server instance
type Server struct {
	config       ConfigProvider
	orchestrator Orchestrator
	scheduler    Scheduler
	feeds        FeedRegistry
	validator    Validator
	version      string
	debug        bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg ConfigProvider, orchestrator Orchestrator, sched Scheduler, feeds FeedRegistry, validator Validator, version string, debug bool) *Server {
	s := &Server{
		config:       cfg,
		orchestrator: orchestrator,
		scheduler:    sched,
		feeds:        feeds,
		validator:    validator,
		version:      version,
		debug:        debug,
		router:       routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedloop", "feedloop", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("POST /feeds/{id}/fetch", s.fetchFeedHandler)
		r.HandleFunc("POST /feeds/fetch-all", s.fetchAllHandler)
		r.HandleFunc("POST /feeds/{id}/status", s.feedStatusHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)

		r.HandleFunc("GET /scheduler/status", s.schedulerStatusHandler)
		r.HandleFunc("POST /scheduler/trigger-fetch", s.triggerFetchHandler)
		r.HandleFunc("POST /scheduler/trigger-cleanup", s.triggerCleanupHandler)
	})
}
