package domain

import "time"

// Feed represents a registered RSS/Atom source tracked for periodic ingestion
type Feed struct {
	ID            int64
	URL           string
	Title         string
	Description   string
	Link          string
	Language      string
	Enabled       bool
	LastFetched   *time.Time
	ErrorCount    int
	LastError     string
	FetchInterval time.Duration
	CreatedAt     time.Time
}

// DisplayName returns a human-readable identifier for logging
func (f *Feed) DisplayName() string {
	if f.Title != "" {
		return f.Title
	}
	return f.URL
}
