// Package newswire simulates the I/O-bound side of the research pipeline:
// fetching raw articles from a news source. The simulated feed suspends the
// calling goroutine for a configured latency without blocking any other
// fetch, then returns a deterministic payload, so pipelines built on it have
// reproducible timing and content.
package newswire

import "time"

// RawArticle is the unprocessed payload produced by a single fetch. It is
// created by a Fetcher and consumed exactly once by the analysis phase.
type RawArticle struct {
	// URL is the article location the payload was fetched from.
	URL string

	// Content is the raw article text.
	Content string

	// FetchDuration is the wall-clock time the fetch took.
	FetchDuration time.Duration
}
