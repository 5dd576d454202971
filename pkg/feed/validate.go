package feed

import (
	"context"
	"strings"

	"github.com/go-pkgz/lgr"
)

// placeholderMeta marks feed metadata that could not be fetched at
// registration time
const placeholderMeta = "unable to fetch yet"

// ValidationResult is the outcome of checking a feed URL at registration
type ValidationResult struct {
	Valid       bool
	Warning     string
	Title       string
	Description string
	Link        string
	Language    string
}

// Validate checks a feed URL with the same two-strategy parse used for
// normal fetching. Failures matching the transient allow-list (anti-bot
// HTTP codes, network trouble, malformed XML) still validate with a warning
// and placeholder metadata, so a feed is not rejected for what is likely a
// temporary condition. Anything else is a real rejection.
func (p *Parser) Validate(ctx context.Context, feedURL string) (*ValidationResult, error) {
	parsed, err := p.Parse(ctx, feedURL)
	if err == nil {
		return &ValidationResult{
			Valid:       true,
			Title:       parsed.Title,
			Description: parsed.Description,
			Link:        parsed.Link,
			Language:    parsed.Language,
		}, nil
	}

	if !p.isTransient(err.Error()) {
		return nil, err
	}

	lgr.Printf("[WARN] feed %s failed validation with transient error, accepting anyway: %v", feedURL, err)
	return &ValidationResult{
		Valid:       true,
		Warning:     err.Error(),
		Title:       placeholderMeta,
		Description: placeholderMeta,
	}, nil
}

// isTransient matches an error message against the configured allow-list
func (p *Parser) isTransient(msg string) bool {
	lower := strings.ToLower(msg)
	for _, signature := range p.transientErrors {
		if strings.Contains(lower, strings.ToLower(signature)) {
			return true
		}
	}
	return false
}
