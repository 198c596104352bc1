package openlibrary

import (
	"encoding/json"
	"strings"

	"github.com/bookradar/bookradar-api/internal/models"
)

// Query describes one upstream search. Exactly one of the simple modes
// (author, title) applies unless additional criteria turn it into an
// advanced query.
type Query struct {
	Author   string
	Title    string
	Language string
	Format   string
	FromYear *int
	ToYear   *int
}

// IsAdvanced reports whether the query needs the combined q= syntax
// instead of a plain author= or title= lookup.
func (q Query) IsAdvanced() bool {
	criteria := 0
	if strings.TrimSpace(q.Author) != "" {
		criteria++
	}
	if strings.TrimSpace(q.Title) != "" {
		criteria++
	}
	if criteria > 1 {
		return true
	}
	return q.Language != "" || q.FromYear != nil || q.ToYear != nil
}

// SearchPage is one decoded page of upstream results.
type SearchPage struct {
	Books  []models.Book
	Total  int
	Offset int
}

// searchResponse mirrors the search.json envelope
type searchResponse struct {
	NumFound int   `json:"numFound"`
	Start    int   `json:"start"`
	Docs     []doc `json:"docs"`
}

// doc is one raw search record; every field is optional upstream
type doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
	Publisher        []string `json:"publisher"`
	Language         []string `json:"language"`
	CoverID          *int64   `json:"cover_i"`
	EbookAccess      string   `json:"ebook_access"`
	Subject          []string `json:"subject"`
}

// workResponse mirrors /works/<key>.json
type workResponse struct {
	Key         string       `json:"key"`
	Title       string       `json:"title"`
	Description textOrObject `json:"description"`
	Subjects    []string     `json:"subjects"`
	Covers      []int64      `json:"covers"`
	Authors     []workAuthor `json:"authors"`
	Languages   []keyRef     `json:"languages"`
	EbookAccess string       `json:"ebook_access"`
}

type workAuthor struct {
	Author keyRef `json:"author"`
}

type keyRef struct {
	Key string `json:"key"`
}

// textOrObject decodes OpenLibrary fields that are either a bare string
// or a {"type": ..., "value": ...} object.
type textOrObject string

func (t *textOrObject) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = textOrObject(s)
		return nil
	}

	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*t = textOrObject(obj.Value)
	return nil
}

// WorkDetail is the typed detail record for one work key.
type WorkDetail struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Subjects    []string `json:"subjects,omitempty"`
	Language    string   `json:"language,omitempty"`
	Format      string   `json:"format"`
	CoverURL    string   `json:"cover_url,omitempty"`
	SourceURL   string   `json:"source_url"`
}

// Book converts a work detail into the normalized book record used by
// the view-history writer.
func (w *WorkDetail) Book() models.Book {
	return models.Book{
		Title:     w.Title,
		Author:    w.Author,
		Language:  w.Language,
		CoverURL:  w.CoverURL,
		SourceURL: w.SourceURL,
		Format:    w.Format,
		Subjects:  w.Subjects,
	}
}
