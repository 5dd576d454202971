package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/feedloop/feedloop/pkg/config"
	"github.com/feedloop/feedloop/pkg/domain"
)

// untitledArticle is the placeholder title for items published without one
const untitledArticle = "Untitled Article"

// Parser converts a feed URL into feed metadata plus normalized candidate
// items. It tries a primary strategy (single request, standards-compliant
// gofeed parse) and falls back to a tolerant streaming parse driven by a
// rotation of User-Agent identities for servers that block the default one.
type Parser struct {
	client          *http.Client
	userAgent       string
	userAgents      []string
	refererHosts    []string
	transientErrors []string
	retryDelay      time.Duration
	now             func() time.Time
}

// NewParser creates a new feed parser from fetch configuration
func NewParser(cfg config.FetchConfig) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:       cfg.UserAgent,
		userAgents:      cfg.UserAgents,
		refererHosts:    cfg.RefererHosts,
		transientErrors: cfg.TransientErrors,
		retryDelay:      time.Second,
		now:             time.Now,
	}
}

// Parse fetches and parses a feed from the given URL. The primary strategy
// is tried first; on any failure every fallback User-Agent is tried in order
// before giving up. The returned error carries both strategies' failures.
func (p *Parser) Parse(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	parsed, primaryErr := p.parsePrimary(ctx, feedURL)
	if primaryErr == nil {
		return parsed, nil
	}
	lgr.Printf("[DEBUG] primary parse failed for %s, trying fallback: %v", feedURL, primaryErr)

	parsed, fallbackErr := p.parseFallback(ctx, feedURL)
	if fallbackErr == nil {
		return parsed, nil
	}

	return nil, fmt.Errorf("parse feed %s: primary strategy: %v; fallback strategy: %v", feedURL, primaryErr, fallbackErr)
}

// parsePrimary issues a single GET with the fixed descriptive User-Agent
// and parses the body with gofeed
func (p *Parser) parsePrimary(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	body, err := p.fetch(ctx, feedURL, p.userAgent, false)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close() //nolint:errcheck // read-only body

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &domain.ParsedFeed{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		Language:    parsed.Language,
		Candidates:  make([]domain.Candidate, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		candidate := domain.Candidate{
			Title:      item.Title,
			Link:       item.Link,
			GUID:       item.GUID,
			Content:    firstNonEmpty(item.Content, item.Description),
			Author:     authorName(item),
			Categories: item.Categories,
		}
		if item.PublishedParsed != nil {
			candidate.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			candidate.Published = *item.UpdatedParsed
		}
		result.Candidates = append(result.Candidates, p.finalize(candidate))
	}

	result.Candidates = dropInvalid(result.Candidates)
	return result, nil
}

// finalize applies the normalization defaults shared by both strategies:
// GUID falls back to link, missing publish time defaults to now, missing
// title gets a placeholder, description derives from content with HTML
// stripped
func (p *Parser) finalize(c domain.Candidate) domain.Candidate {
	if c.GUID == "" {
		c.GUID = c.Link
	}
	if c.Published.IsZero() {
		c.Published = p.now()
	}
	if c.Title == "" {
		c.Title = untitledArticle
	}
	if c.Description == "" {
		c.Description = stripHTML(c.Content)
	}
	return c
}

// dropInvalid discards candidates lacking a link or content. This runs
// before dedupe and before persistence, so invalid items never reach the
// store.
func dropInvalid(candidates []domain.Candidate) []domain.Candidate {
	valid := candidates[:0]
	for _, c := range candidates {
		if !c.Valid() {
			lgr.Printf("[DEBUG] dropping invalid candidate %q (link: %q)", c.Title, c.Link)
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

// fetch retrieves content from a URL with the given User-Agent. Fallback
// requests additionally get a Referer for known hostile hosts.
func (p *Parser) fetch(ctx context.Context, feedURL, userAgent string, fallback bool) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	addFeedHeaders(req)

	if fallback {
		if referer := p.refererFor(feedURL); referer != "" {
			req.Header.Set("Referer", referer)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// refererFor returns a Referer derived from the target host when the URL
// matches the configured hostile-host substrings, empty otherwise
func (p *Parser) refererFor(feedURL string) string {
	lower := strings.ToLower(feedURL)
	for _, host := range p.refererHosts {
		if !strings.Contains(lower, strings.ToLower(host)) {
			continue
		}
		if u, err := url.Parse(feedURL); err == nil && u.Host != "" {
			return u.Scheme + "://" + u.Host + "/"
		}
	}
	return ""
}

// authorName extracts the author name from a gofeed item
func authorName(item *gofeed.Item) string {
	if item.Author != nil {
		return item.Author.Name
	}
	return ""
}

// firstNonEmpty returns the first non-empty string
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
