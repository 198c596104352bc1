// Package recommendations serves stored, score-ranked book suggestions.
package recommendations

import (
	"context"
	"sort"

	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/history"
	apperrors "github.com/bookradar/bookradar-api/pkg/errors"
)

const (
	defaultLimit       = 20
	defaultRecentViews = 20
	candidatesPerView  = 5
)

// Service implements Recommender
type Service struct {
	repository      Repository
	views           history.Repository
	defaultLimit    int
	recentViewCount int
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithDefaultLimit overrides the listing cap
func WithDefaultLimit(limit int) ServiceOption {
	return func(s *Service) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// WithRecentViewCount overrides how many view rows seed ForRecentViews
func WithRecentViewCount(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.recentViewCount = n
		}
	}
}

// NewService creates a recommendation service. The view repository may be
// nil when only direct listings are needed.
func NewService(repository Repository, views history.Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repository:      repository,
		views:           views,
		defaultLimit:    defaultLimit,
		recentViewCount: defaultRecentViews,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns active recommendations for the given filter
func (s *Service) List(ctx context.Context, filter Filter) ([]models.Recommendation, error) {
	if filter.Limit <= 0 {
		filter.Limit = s.defaultLimit
	}

	rows, err := s.repository.ListActive(ctx, filter)
	if err != nil {
		return nil, apperrors.DatabaseError("recommendation list", err)
	}
	return rows, nil
}

// ForRecentViews builds a suggestion list from the most recently viewed
// books: genre, language and format candidates are gathered per view,
// deduplicated by recommended title keeping the best score, and ranked.
func (s *Service) ForRecentViews(ctx context.Context, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if s.views == nil {
		return s.List(ctx, Filter{Limit: limit})
	}

	viewed, err := s.views.ListViews(ctx, s.recentViewCount)
	if err != nil {
		return nil, apperrors.DatabaseError("view history list", err)
	}
	if len(viewed) == 0 {
		return s.List(ctx, Filter{Limit: limit})
	}

	var candidates []models.Recommendation
	for _, v := range viewed {
		byGenre, err := s.repository.ListActive(ctx, Filter{GenreTagged: true, Limit: candidatesPerView})
		if err != nil {
			return nil, apperrors.DatabaseError("recommendation list", err)
		}
		candidates = append(candidates, byGenre...)

		if v.Language != "" {
			byLanguage, err := s.repository.ListActive(ctx, Filter{Language: v.Language, Limit: candidatesPerView})
			if err != nil {
				return nil, apperrors.DatabaseError("recommendation list", err)
			}
			candidates = append(candidates, byLanguage...)
		}

		if v.Format != "" {
			byFormat, err := s.repository.ListActive(ctx, Filter{Format: v.Format, Limit: candidatesPerView})
			if err != nil {
				return nil, apperrors.DatabaseError("recommendation list", err)
			}
			candidates = append(candidates, byFormat...)
		}
	}

	return rankUnique(candidates, limit), nil
}

// rankUnique deduplicates by recommended title keeping the highest score,
// then orders by score descending and caps the list.
func rankUnique(candidates []models.Recommendation, limit int) []models.Recommendation {
	best := make(map[string]models.Recommendation, len(candidates))
	for _, c := range candidates {
		if existing, ok := best[c.RecommendedTitle]; !ok || c.SimilarityScore > existing.SimilarityScore {
			best[c.RecommendedTitle] = c
		}
	}

	ranked := make([]models.Recommendation, 0, len(best))
	for _, c := range best {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].SimilarityScore != ranked[j].SimilarityScore {
			return ranked[i].SimilarityScore > ranked[j].SimilarityScore
		}
		return ranked[i].RecommendedTitle < ranked[j].RecommendedTitle
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
