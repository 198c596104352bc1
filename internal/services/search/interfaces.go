package search

import (
	"context"

	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
)

// PageFetcher fetches one bounded page of upstream results
type PageFetcher interface {
	SearchPage(ctx context.Context, query openlibrary.Query, limit, offset int) (*openlibrary.SearchPage, error)
}

// Result is an assembled, ordered result set.
type Result struct {
	// Books is sorted by publish year descending, then title ascending.
	Books []models.Book
	// Total is the upstream-reported match count, which may exceed
	// len(Books).
	Total int
	// Truncated is true when more results exist upstream than were
	// fetched, including the page-cap case.
	Truncated bool
	// NextOffset is the continuation cursor for the first unfetched
	// record; zero when the set is complete.
	NextOffset int
}

// Aggregating defines the three result-assembly operations
type Aggregating interface {
	FetchStandard(ctx context.Context, query openlibrary.Query, limit int) (*Result, error)
	FetchWithLimit(ctx context.Context, query openlibrary.Query, limit int) (*Result, error)
	FetchExhaustive(ctx context.Context, query openlibrary.Query) (*Result, error)
}
