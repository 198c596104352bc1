package history

import (
	"context"
	"time"

	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
)

// Repository defines the data access interface for the history log
type Repository interface {
	// Search history
	InsertSearches(ctx context.Context, rows []models.SearchHistory) error
	ExistsAuthorSince(ctx context.Context, author string, since time.Time) (bool, error)
	ExistsTitleSince(ctx context.Context, title string, since time.Time) (bool, error)
	ListSearches(ctx context.Context, limit int) ([]models.SearchHistory, error)

	// View history
	InsertView(ctx context.Context, row *models.ViewHistory) error
	ListViews(ctx context.Context, limit int) ([]models.ViewHistory, error)
}

// Status describes the persistence outcome of one search
type Status string

const (
	// StatusSaved means one row per result was written
	StatusSaved Status = "saved"
	// StatusSkippedRecent means the same query was persisted within the
	// dedup window and nothing was written
	StatusSkippedRecent Status = "recent_duplicate"
	// StatusNoResults means the search matched nothing and nothing was
	// written
	StatusNoResults Status = "no_matches"
)

// Outcome reports what RecordSearch did
type Outcome struct {
	Status Status `json:"status"`
	Rows   int    `json:"rows"`
}

// Recorder defines the business logic interface for history operations
type Recorder interface {
	RecordSearch(ctx context.Context, query openlibrary.Query, books []models.Book) (*Outcome, error)
	RecordView(ctx context.Context, book models.Book, ipAddress, userAgent string) error
	RecentSearches(ctx context.Context, limit int) ([]models.SearchHistory, error)
	RecentViews(ctx context.Context, limit int) ([]models.ViewHistory, error)
}
