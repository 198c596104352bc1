package models

import (
	"time"

	"gorm.io/gorm"
)

// TitleSearchAuthor is stored in the Author column for searches that were
// made by title rather than by author.
const TitleSearchAuthor = "Title search"

// SearchHistory is one append-only row of the search log. A search that
// returns N books produces N rows, all stamped with the same capture time.
type SearchHistory struct {
	gorm.Model
	Author      string    `json:"author" gorm:"not null;size:200;index"`
	Title       string    `json:"title" gorm:"not null;size:500;index"`
	PublishYear *int      `json:"publish_year"`
	Publisher   string    `json:"publisher" gorm:"size:200"`
	SearchedAt  time.Time `json:"searched_at" gorm:"not null;index"`
}

// TableName returns the table name for the SearchHistory model
func (SearchHistory) TableName() string {
	return "search_history"
}

// ViewHistory records one detail-page visit. Append-only.
type ViewHistory struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null;size:500"`
	Author      string    `json:"author" gorm:"size:200"`
	Language    string    `json:"language" gorm:"size:50"`
	PublishYear *int      `json:"publish_year"`
	Format      string    `json:"format" gorm:"size:100"`
	CoverURL    string    `json:"cover_url" gorm:"size:500"`
	SourceURL   string    `json:"source_url" gorm:"size:500"`
	ViewedAt    time.Time `json:"viewed_at" gorm:"not null;index"`
	IPAddress   string    `json:"ip_address,omitempty" gorm:"size:50"`
	UserAgent   string    `json:"user_agent,omitempty" gorm:"size:200"`
}

// TableName returns the table name for the ViewHistory model
func (ViewHistory) TableName() string {
	return "view_history"
}
