package types

import (
	"strings"

	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
	"github.com/bookradar/bookradar-api/pkg/validation"
)

// Search modes selecting the result-count policy
const (
	SearchModeDefault = "default"
	SearchModeCustom  = "custom"
)

// SearchRequest represents a book search request
type SearchRequest struct {
	Author     string `json:"author,omitempty" example:"Jorge Luis Borges"`
	Title      string `json:"title,omitempty" example:"Ficciones"`
	Language   string `json:"language,omitempty" example:"spa"`
	Format     string `json:"format,omitempty" example:"public ebook"`
	FromYear   *int   `json:"from_year,omitempty" example:"1940"`
	ToYear     *int   `json:"to_year,omitempty" example:"1960"`
	Limit      int    `json:"limit,omitempty" example:"100"`
	Mode       string `json:"mode,omitempty" example:"default"`
	Exhaustive bool   `json:"exhaustive,omitempty" example:"false"`
}

// Validate checks every field and returns per-field messages. An empty
// map means the request is valid; no upstream call happens otherwise.
func (r SearchRequest) Validate() map[string]string {
	fields := map[string]string{}

	if !validation.HasCriteria(r.Author, r.Title, r.Language, r.Format, r.FromYear, r.ToYear) {
		fields["query"] = "enter an author or a title to search"
		return fields
	}
	if err := validation.Author(r.Author); err != nil {
		fields["author"] = err.Error()
	}
	if err := validation.Title(r.Title); err != nil {
		fields["title"] = err.Error()
	}
	if err := validation.YearRange(r.FromYear, r.ToYear); err != nil {
		fields["to_year"] = err.Error()
	}
	if err := validation.Limit(r.Limit); err != nil {
		fields["limit"] = err.Error()
	}

	return fields
}

// Query maps the request onto an upstream query
func (r SearchRequest) Query() openlibrary.Query {
	return openlibrary.Query{
		Author:   strings.TrimSpace(r.Author),
		Title:    strings.TrimSpace(r.Title),
		Language: strings.TrimSpace(r.Language),
		Format:   strings.TrimSpace(r.Format),
		FromYear: r.FromYear,
		ToYear:   r.ToYear,
	}
}
