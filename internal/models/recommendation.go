package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recommendation types
const (
	RecommendationByGenre    = "genre"
	RecommendationByAuthor   = "author"
	RecommendationByLanguage = "language"
	RecommendationByFormat   = "format"
)

// Recommendation is a stored book-to-book suggestion ranked by a
// precomputed similarity score.
type Recommendation struct {
	gorm.Model
	SourceTitle        string         `json:"source_title" gorm:"not null;size:500"`
	SourceAuthor       string         `json:"source_author" gorm:"size:200"`
	RecommendedTitle   string         `json:"recommended_title" gorm:"not null;size:500;index"`
	RecommendedAuthor  string         `json:"recommended_author" gorm:"size:200"`
	Genre              string         `json:"genre" gorm:"size:100;index"`
	Language           string         `json:"language" gorm:"size:100;index"`
	PublishYear        *int           `json:"publish_year"`
	Format             string         `json:"format" gorm:"size:100;index"`
	CoverURL           string         `json:"cover_url" gorm:"size:500"`
	SourceURL          string         `json:"source_url" gorm:"size:500"`
	Subjects           datatypes.JSON `json:"subjects,omitempty"`
	SimilarityScore    float64        `json:"similarity_score" gorm:"not null;index"`
	RecommendationType string         `json:"recommendation_type" gorm:"size:50;default:genre"`
	Active             bool           `json:"active" gorm:"default:true"`
	GeneratedAt        time.Time      `json:"generated_at"`
}

// TableName returns the table name for the Recommendation model
func (Recommendation) TableName() string {
	return "recommendations"
}
