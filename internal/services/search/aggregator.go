// Package search assembles complete result sets from the paginated
// upstream search API.
package search

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
)

const (
	// DefaultPageSize is the upstream page size used when the caller
	// does not ask for a specific limit.
	DefaultPageSize = 100
	// DefaultMaxPages bounds an exhaustive search to 100 page calls
	// total, limiting worst-case upstream load to 10000 records.
	DefaultMaxPages = 100

	defaultMaxConcurrentPages = 10
)

// Aggregator orchestrates single-page, limited and exhaustive fetches.
type Aggregator struct {
	fetcher       PageFetcher
	pageSize      int
	maxPages      int
	maxConcurrent int
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithPageSize overrides the upstream page size
func WithPageSize(size int) Option {
	return func(a *Aggregator) {
		if size > 0 {
			a.pageSize = size
		}
	}
}

// WithMaxPages overrides the exhaustive page-count ceiling
func WithMaxPages(pages int) Option {
	return func(a *Aggregator) {
		if pages > 0 && pages <= DefaultMaxPages {
			a.maxPages = pages
		}
	}
}

// WithMaxConcurrentPages bounds the number of in-flight page fetches
func WithMaxConcurrentPages(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.maxConcurrent = n
		}
	}
}

// NewAggregator creates a result aggregator over the given page fetcher
func NewAggregator(fetcher PageFetcher, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher:       fetcher,
		pageSize:      DefaultPageSize,
		maxPages:      DefaultMaxPages,
		maxConcurrent: defaultMaxConcurrentPages,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FetchStandard performs a single bounded upstream call. A limit of zero
// or less falls back to the default page size.
func (a *Aggregator) FetchStandard(ctx context.Context, query openlibrary.Query, limit int) (*Result, error) {
	if limit <= 0 {
		limit = a.pageSize
	}

	page, err := a.fetcher.SearchPage(ctx, query, limit, 0)
	if err != nil {
		return nil, err
	}

	return a.assemble(page.Books, page.Total), nil
}

// FetchWithLimit behaves as FetchStandard for limits within one page and
// otherwise runs an exhaustive fetch truncated to the requested limit.
func (a *Aggregator) FetchWithLimit(ctx context.Context, query openlibrary.Query, limit int) (*Result, error) {
	if limit <= a.pageSize {
		return a.FetchStandard(ctx, query, limit)
	}

	result, err := a.FetchExhaustive(ctx, query)
	if err != nil {
		return result, err
	}

	if len(result.Books) > limit {
		result.Books = result.Books[:limit]
		result.Truncated = true
		result.NextOffset = limit
	}

	return result, nil
}

// FetchExhaustive assembles the complete result set. The first page is
// mandatory: if it fails, the whole operation aborts with an empty
// result. Every later page is fetched concurrently and contributes
// nothing when it fails.
func (a *Aggregator) FetchExhaustive(ctx context.Context, query openlibrary.Query) (*Result, error) {
	first, err := a.fetcher.SearchPage(ctx, query, a.pageSize, 0)
	if err != nil {
		return &Result{Books: []models.Book{}}, err
	}

	total := first.Total
	if total <= a.pageSize {
		return a.assemble(first.Books, total), nil
	}

	pageCount := (total + a.pageSize - 1) / a.pageSize
	if pageCount > a.maxPages {
		pageCount = a.maxPages
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		books = first.Books
	)

	// Fan out the remaining pages; the WaitGroup is the fan-in barrier.
	sem := make(chan struct{}, a.maxConcurrent)

	for pageNum := 1; pageNum < pageCount; pageNum++ {
		wg.Add(1)
		sem <- struct{}{} // Acquire semaphore

		go func(offset int) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore

			page, pageErr := a.fetcher.SearchPage(ctx, query, a.pageSize, offset)
			if pageErr != nil {
				// A failed page contributes zero records
				log.Printf("[WARN] Dropping page at offset %d: %v", offset, pageErr)
				return
			}

			mu.Lock()
			books = append(books, page.Books...)
			mu.Unlock()
		}(pageNum * a.pageSize)
	}

	wg.Wait()

	return a.assemble(books, total), nil
}

// assemble sorts the merged set and derives the truncation flag and
// continuation cursor.
func (a *Aggregator) assemble(books []models.Book, total int) *Result {
	sortBooks(books)

	result := &Result{
		Books: books,
		Total: total,
	}
	if len(books) < total {
		result.Truncated = true
		result.NextOffset = len(books)
	}
	return result
}

// sortBooks orders by publish year descending with unknown years last,
// ties broken by title ascending with a case-sensitive byte compare.
func sortBooks(books []models.Book) {
	sort.SliceStable(books, func(i, j int) bool {
		yi, yj := yearOf(books[i]), yearOf(books[j])
		if yi != yj {
			return yi > yj
		}
		return books[i].Title < books[j].Title
	})
}

func yearOf(b models.Book) int {
	if b.PublishYear == nil {
		return -1 << 31
	}
	return *b.PublishYear
}
