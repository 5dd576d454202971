package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedloop/feedloop/pkg/domain"
)

// parseFallback tries the tolerant streaming parser with every configured
// User-Agent in order. A fixed delay between failed attempts keeps the
// rotation below typical abuse heuristics; the fallback fails only after
// the whole list has been exhausted.
func (p *Parser) parseFallback(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	if len(p.userAgents) == 0 {
		return nil, fmt.Errorf("no fallback user agents configured")
	}

	var lastErr error
	for i, userAgent := range p.userAgents {
		if i > 0 {
			select {
			case <-time.After(p.retryDelay):
			case <-ctx.Done():
				return nil, fmt.Errorf("fallback canceled: %w", ctx.Err())
			}
		}

		parsed, err := p.fallbackAttempt(ctx, feedURL, userAgent)
		if err != nil {
			lgr.Printf("[DEBUG] fallback attempt %d/%d failed for %s: %v", i+1, len(p.userAgents), feedURL, err)
			lastErr = err
			continue
		}
		return parsed, nil
	}

	return nil, fmt.Errorf("all %d user agents failed, last error: %w", len(p.userAgents), lastErr)
}

// fallbackAttempt performs one fetch-and-parse cycle with the given identity
func (p *Parser) fallbackAttempt(ctx context.Context, feedURL, userAgent string) (*domain.ParsedFeed, error) {
	body, err := p.fetch(ctx, feedURL, userAgent, true)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck // read-only body

	raw, err := parseTolerant(body)
	if err != nil {
		return nil, err
	}

	result := &domain.ParsedFeed{
		Title:       raw.title,
		Description: raw.description,
		Link:        raw.link,
		Language:    raw.language,
		Candidates:  make([]domain.Candidate, 0, len(raw.items)),
	}

	for _, item := range raw.items {
		candidate := domain.Candidate{
			Title:      item.title,
			Link:       item.link,
			GUID:       item.guid,
			Content:    firstNonEmpty(item.content, item.summary, item.description),
			Author:     item.author,
			Categories: item.categories,
			Published:  parsePubDate(firstNonEmpty(item.pubDate, item.updated)),
		}
		result.Candidates = append(result.Candidates, p.finalize(candidate))
	}

	result.Candidates = dropInvalid(result.Candidates)
	return result, nil
}

// pubDateFormats covers the date formats seen in real-world feeds
var pubDateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// parsePubDate parses a feed item date, zero time when unparseable
func parsePubDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, format := range pubDateFormats {
		if ts, err := time.Parse(format, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
