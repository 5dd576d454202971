package domain

// FetchResult holds the outcome of a single feed fetch, transient only
type FetchResult struct {
	FeedID   int64
	FeedName string
	Inserted int
	Err      string
}

// RunSummary aggregates fetch results across one full run over active feeds
type RunSummary struct {
	TotalFetched   int `json:"total_fetched"`
	TotalErrors    int `json:"total_errors"`
	FeedsProcessed int `json:"feeds_processed"`
}
