package domain

import "time"

// Article represents one normalized item stored from a feed
type Article struct {
	ID          int64
	FeedID      int64
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string
	Author      string
	Categories  []string
	Published   time.Time
	CreatedAt   time.Time
}

// ParsedFeed is the result of parsing a feed URL: feed-level metadata
// plus normalized candidate items, not yet deduplicated or persisted
type ParsedFeed struct {
	Title       string
	Description string
	Link        string
	Language    string
	Candidates  []Candidate
}

// Candidate is a parsed-but-not-yet-deduplicated article
type Candidate struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string
	Author      string
	Categories  []string
	Published   time.Time
}

// Valid reports whether the candidate carries enough data to be stored.
// Items without a link or without any content are dropped before dedupe.
func (c *Candidate) Valid() bool {
	return c.Link != "" && c.Content != ""
}
