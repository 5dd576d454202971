package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedloop/feedloop/pkg/domain"
	"github.com/feedloop/feedloop/pkg/feed"
	"github.com/feedloop/feedloop/pkg/repository"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser

// FeedStore is the feed persistence surface the orchestrator needs
type FeedStore interface {
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	GetFeeds(ctx context.Context, enabledOnly bool) ([]domain.Feed, error)
	UpdateFeedFetched(ctx context.Context, feedID int64) error
	UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error
}

// ArticleStore is the article persistence surface the orchestrator needs
type ArticleStore interface {
	GetArticleKeys(ctx context.Context, feedID int64) (*repository.ArticleKeys, error)
	CreateArticles(ctx context.Context, feedID int64, candidates []domain.Candidate) ([]domain.Article, error)
	Prune(ctx context.Context, maxAge time.Duration, maxPerFeed int) (int64, error)
}

// Parser converts a feed URL into normalized candidates
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Orchestrator drives the fetch-filter-persist cycle for single feeds and
// for full runs over every enabled feed. It owns the per-feed error-state
// transition: error counts grow on parse failure and reset on success, but a
// feed is never auto-disabled no matter how often it fails.
type Orchestrator struct {
	feeds       FeedStore
	articles    ArticleStore
	parser      Parser
	concurrency int
}

// NewOrchestrator creates an orchestrator. Concurrency bounds how many feeds
// one run fetches in parallel, 1 means strictly sequential.
func NewOrchestrator(feeds FeedStore, articles ArticleStore, parser Parser, concurrency int) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Orchestrator{feeds: feeds, articles: articles, parser: parser, concurrency: concurrency}
}

// FetchOne runs the parse-filter-persist cycle for a single feed and returns
// the number of newly stored articles. A parse failure is recorded on the
// feed (error count up, last_fetched moves forward) and returned; a parse
// that yields no valid candidates leaves feed state untouched.
func (o *Orchestrator) FetchOne(ctx context.Context, f *domain.Feed) (int, error) {
	lgr.Printf("[DEBUG] fetching feed: %s", f.DisplayName())

	parsed, err := o.parser.Parse(ctx, f.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to parse feed %s: %v", f.DisplayName(), err)
		if updErr := o.feeds.UpdateFeedError(ctx, f.ID, err.Error()); updErr != nil {
			lgr.Printf("[WARN] failed to record error for feed %s: %v", f.DisplayName(), updErr)
		}
		return 0, err
	}

	if len(parsed.Candidates) == 0 {
		lgr.Printf("[DEBUG] feed %s has no valid candidates", f.DisplayName())
		return 0, nil
	}

	keys, err := o.articles.GetArticleKeys(ctx, f.ID)
	if err != nil {
		return 0, fmt.Errorf("load article index for feed %s: %w", f.DisplayName(), err)
	}

	fresh := feed.Dedupe(parsed.Candidates, feed.NewIndex(keys.Links, keys.GUIDs, keys.Titles))

	inserted, err := o.articles.CreateArticles(ctx, f.ID, fresh)
	if err != nil {
		return len(inserted), fmt.Errorf("store articles for feed %s: %w", f.DisplayName(), err)
	}

	if err := o.feeds.UpdateFeedFetched(ctx, f.ID); err != nil {
		lgr.Printf("[WARN] failed to record successful fetch for feed %s: %v", f.DisplayName(), err)
	}

	if len(inserted) > 0 {
		lgr.Printf("[INFO] added %d new articles from feed %s", len(inserted), f.DisplayName())
	}
	return len(inserted), nil
}

// FetchFeed fetches a single feed by ID, for manual triggers
func (o *Orchestrator) FetchFeed(ctx context.Context, feedID int64) (int, error) {
	f, err := o.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return 0, fmt.Errorf("get feed %d: %w", feedID, err)
	}
	return o.FetchOne(ctx, f)
}

// FetchAll runs FetchOne for every enabled feed. Feed-level failures are
// isolated and aggregated into the summary; only the inability to list feeds
// at all is returned as an error.
func (o *Orchestrator) FetchAll(ctx context.Context) (domain.RunSummary, error) {
	var summary domain.RunSummary

	feeds, err := o.feeds.GetFeeds(ctx, true)
	if err != nil {
		return summary, fmt.Errorf("get enabled feeds: %w", err)
	}

	lgr.Printf("[INFO] fetching %d feeds", len(feeds))

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(o.concurrency)

	for _, f := range feeds {
		g.Go(func() error {
			count, fetchErr := o.FetchOne(ctx, &f)
			res := domain.FetchResult{FeedID: f.ID, FeedName: f.DisplayName(), Inserted: count}
			if fetchErr != nil {
				res.Err = fetchErr.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			summary.FeedsProcessed++
			if res.Err != "" {
				summary.TotalErrors++
				return nil
			}
			summary.TotalFetched += res.Inserted
			return nil
		})
	}

	_ = g.Wait() // tasks never return errors, failures are in the summary

	lgr.Printf("[INFO] fetch run completed: %d new articles, %d errors, %d feeds",
		summary.TotalFetched, summary.TotalErrors, summary.FeedsProcessed)
	return summary, nil
}
