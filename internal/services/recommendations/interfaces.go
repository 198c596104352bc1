package recommendations

import (
	"context"

	"github.com/bookradar/bookradar-api/internal/models"
)

// Filter narrows a recommendation listing. Zero values mean "no filter";
// GenreTagged keeps only rows that carry any genre at all.
type Filter struct {
	Genre       string
	Language    string
	Format      string
	GenreTagged bool
	Limit       int
}

// Repository defines the data access interface for stored recommendations
type Repository interface {
	ListActive(ctx context.Context, filter Filter) ([]models.Recommendation, error)
	InsertBatch(ctx context.Context, rows []models.Recommendation) error
}

// Recommender defines the business logic interface for recommendations
type Recommender interface {
	List(ctx context.Context, filter Filter) ([]models.Recommendation, error)
	ForRecentViews(ctx context.Context, limit int) ([]models.Recommendation, error)
}
