package types

import (
	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/history"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// BookSearchResponse for the search endpoint
type BookSearchResponse struct {
	BaseResponse
	Books      []models.Book    `json:"books"`
	Count      int              `json:"count"`                 // Number of results in this response
	Total      int              `json:"total"`                 // Upstream-reported match count
	Truncated  bool             `json:"truncated"`             // More results exist than were fetched
	NextOffset int              `json:"next_offset,omitempty"` // Continuation cursor
	History    *history.Outcome `json:"history,omitempty"`     // Persistence outcome
}

// SearchHistoryResponse for the search-history listing
type SearchHistoryResponse struct {
	BaseResponse
	Searches []models.SearchHistory `json:"searches"`
	Count    int                    `json:"count"`
}

// ViewHistoryResponse for the view-history listing
type ViewHistoryResponse struct {
	BaseResponse
	Views []models.ViewHistory `json:"views"`
	Count int                  `json:"count"`
}

// WorkResponse for the work detail endpoint
type WorkResponse struct {
	BaseResponse
	Work *openlibrary.WorkDetail `json:"work"`
}

// RecommendationsResponse for the recommendations endpoint
type RecommendationsResponse struct {
	BaseResponse
	Recommendations []models.Recommendation `json:"recommendations"`
	Count           int                     `json:"count"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}
