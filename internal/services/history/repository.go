package history

import (
	"context"
	"fmt"
	"time"

	"github.com/bookradar/bookradar-api/internal/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed history repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// InsertSearches appends one batch of search rows
func (r *repository) InsertSearches(ctx context.Context, rows []models.SearchHistory) error {
	if len(rows) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("inserting search history: %w", err)
	}
	return nil
}

// ExistsAuthorSince reports whether the author was searched at or after
// the given instant
func (r *repository) ExistsAuthorSince(ctx context.Context, author string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SearchHistory{}).
		Where("author = ? AND searched_at >= ?", author, since).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking recent author search: %w", err)
	}
	return count > 0, nil
}

// ExistsTitleSince reports whether the title was searched at or after
// the given instant
func (r *repository) ExistsTitleSince(ctx context.Context, title string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SearchHistory{}).
		Where("title = ? AND searched_at >= ?", title, since).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking recent title search: %w", err)
	}
	return count > 0, nil
}

// ListSearches returns the most recent search rows, newest first
func (r *repository) ListSearches(ctx context.Context, limit int) ([]models.SearchHistory, error) {
	var rows []models.SearchHistory
	if err := r.db.WithContext(ctx).
		Order("searched_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing search history: %w", err)
	}
	return rows, nil
}

// InsertView appends one view row
func (r *repository) InsertView(ctx context.Context, row *models.ViewHistory) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("inserting view history: %w", err)
	}
	return nil
}

// ListViews returns the most recent view rows, newest first
func (r *repository) ListViews(ctx context.Context, limit int) ([]models.ViewHistory, error) {
	var rows []models.ViewHistory
	if err := r.db.WithContext(ctx).
		Order("viewed_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing view history: %w", err)
	}
	return rows, nil
}
