package recommendations

import (
	"context"
	"fmt"

	"github.com/bookradar/bookradar-api/internal/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed recommendation repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListActive returns active recommendations matching the filter, ranked
// by similarity score descending
func (r *repository) ListActive(ctx context.Context, filter Filter) ([]models.Recommendation, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Recommendation{}).
		Where("active = ?", true)

	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	} else if filter.GenreTagged {
		query = query.Where("genre <> ''")
	}
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.Format != "" {
		query = query.Where("format = ?", filter.Format)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []models.Recommendation
	if err := query.Order("similarity_score DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	return rows, nil
}

// InsertBatch stores a batch of recommendation rows
func (r *repository) InsertBatch(ctx context.Context, rows []models.Recommendation) error {
	if len(rows) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("inserting recommendations: %w", err)
	}
	return nil
}
