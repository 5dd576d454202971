package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
)

// Cleaner prunes the article store: articles older than the retention window
// go away, and each feed is capped at a fixed number of newest articles
type Cleaner struct {
	articles   ArticleStore
	maxPerFeed int
}

// NewCleaner creates a retention cleaner with the given per-feed cap
func NewCleaner(articles ArticleStore, maxPerFeed int) *Cleaner {
	return &Cleaner{articles: articles, maxPerFeed: maxPerFeed}
}

// Cleanup deletes articles older than daysToKeep days plus each feed's
// overflow beyond the cap, and returns the number of deleted rows
func (c *Cleaner) Cleanup(ctx context.Context, daysToKeep int) (int64, error) {
	if daysToKeep < 1 {
		return 0, fmt.Errorf("days to keep must be at least 1, got %d", daysToKeep)
	}

	deleted, err := c.articles.Prune(ctx, time.Duration(daysToKeep)*24*time.Hour, c.maxPerFeed)
	if err != nil {
		return 0, fmt.Errorf("prune articles: %w", err)
	}

	lgr.Printf("[INFO] cleanup removed %d articles (retention %dd, cap %d per feed)", deleted, daysToKeep, c.maxPerFeed)
	return deleted, nil
}
