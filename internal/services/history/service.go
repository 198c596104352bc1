// Package history keeps the append-only log of past searches and views
// and applies the recency dedup rule before new writes.
package history

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
	apperrors "github.com/bookradar/bookradar-api/pkg/errors"
)

// DefaultDedupWindow suppresses duplicate writes for the same query key
const DefaultDedupWindow = time.Minute

// Service implements Recorder on top of a Repository
type Service struct {
	repository  Repository
	dedupWindow time.Duration
	now         func() time.Time
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithDedupWindow overrides the recency window
func WithDedupWindow(window time.Duration) ServiceOption {
	return func(s *Service) {
		if window > 0 {
			s.dedupWindow = window
		}
	}
}

// withNow injects the clock for tests
func withNow(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a history recorder
func NewService(repository Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repository:  repository,
		dedupWindow: DefaultDedupWindow,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordSearch persists one row per result unless the same query key was
// already written inside the dedup window. All rows of one batch carry
// the same capture timestamp.
//
// The recency check and the insert are two separate statements; two
// near-simultaneous requests for the same key can both pass the check
// and double-write. Accepted as-is for an append-only display log.
func (s *Service) RecordSearch(ctx context.Context, query openlibrary.Query, books []models.Book) (*Outcome, error) {
	now := s.now()
	since := now.Add(-s.dedupWindow)

	recent, err := s.recentQueryExists(ctx, query, since)
	if err != nil {
		return nil, apperrors.DatabaseError("recency check", err)
	}
	if recent {
		return &Outcome{Status: StatusSkippedRecent}, nil
	}

	if len(books) == 0 {
		return &Outcome{Status: StatusNoResults}, nil
	}

	author := strings.TrimSpace(query.Author)
	if author == "" {
		author = models.TitleSearchAuthor
	}

	rows := make([]models.SearchHistory, 0, len(books))
	for _, b := range books {
		rows = append(rows, models.SearchHistory{
			Author:      author,
			Title:       b.Title,
			PublishYear: b.PublishYear,
			Publisher:   b.Publisher,
			SearchedAt:  now,
		})
	}

	if err := s.repository.InsertSearches(ctx, rows); err != nil {
		return nil, apperrors.DatabaseError("search history insert", err)
	}

	return &Outcome{Status: StatusSaved, Rows: len(rows)}, nil
}

// recentQueryExists checks the query key (author, or title for title
// searches) against the dedup window
func (s *Service) recentQueryExists(ctx context.Context, query openlibrary.Query, since time.Time) (bool, error) {
	if author := strings.TrimSpace(query.Author); author != "" {
		return s.repository.ExistsAuthorSince(ctx, author, since)
	}
	if title := strings.TrimSpace(query.Title); title != "" {
		return s.repository.ExistsTitleSince(ctx, title, since)
	}
	return false, nil
}

// RecordView appends one detail-page visit
func (s *Service) RecordView(ctx context.Context, book models.Book, ipAddress, userAgent string) error {
	row := &models.ViewHistory{
		Title:       book.Title,
		Author:      book.Author,
		Language:    book.Language,
		PublishYear: book.PublishYear,
		Format:      book.Format,
		CoverURL:    book.CoverURL,
		SourceURL:   book.SourceURL,
		ViewedAt:    s.now(),
		IPAddress:   ipAddress,
		UserAgent:   userAgent,
	}

	if err := s.repository.InsertView(ctx, row); err != nil {
		log.Printf("[WARN] Failed to record view for %q: %v", book.Title, err)
		return apperrors.DatabaseError("view history insert", err)
	}
	return nil
}

// RecentSearches returns the latest search rows
func (s *Service) RecentSearches(ctx context.Context, limit int) ([]models.SearchHistory, error) {
	rows, err := s.repository.ListSearches(ctx, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("search history list", err)
	}
	return rows, nil
}

// RecentViews returns the latest view rows
func (s *Service) RecentViews(ctx context.Context, limit int) ([]models.ViewHistory, error) {
	rows, err := s.repository.ListViews(ctx, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("view history list", err)
	}
	return rows, nil
}
