// Package openlibrary implements the client for the OpenLibrary
// bibliographic search API.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bookradar/bookradar-api/internal/models"
	apperrors "github.com/bookradar/bookradar-api/pkg/errors"
)

// Client handles communication with the OpenLibrary API
type Client struct {
	httpClient *http.Client
	baseURL    string
	coversURL  string
	userAgent  string
}

// Config holds configuration for the OpenLibrary client
type Config struct {
	BaseURL   string
	CoversURL string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a new OpenLibrary API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openlibrary.org"
	}
	if cfg.CoversURL == "" {
		cfg.CoversURL = "https://covers.openlibrary.org"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "BookRadarAPI/1.0"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		coversURL:  strings.TrimRight(cfg.CoversURL, "/"),
		userAgent:  cfg.UserAgent,
	}
}

// makeAPIRequest is a helper method to reduce code duplication for API requests
func (c *Client) makeAPIRequest(ctx context.Context, endpoint string, result interface{}) error {
	fullURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.UpstreamError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NotFound("work", endpoint)
	}
	if resp.StatusCode != http.StatusOK {
		return apperrors.UpstreamError(endpoint, fmt.Errorf("API returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return apperrors.UpstreamError(endpoint, fmt.Errorf("decoding response: %w", err))
	}

	return nil
}

// SearchPage performs one bounded search call. It decodes the page,
// filters out records without a title and maps the rest into normalized
// book records. The returned Total is the upstream-reported numFound.
func (c *Client) SearchPage(ctx context.Context, query Query, limit, offset int) (*SearchPage, error) {
	params, err := buildSearchParams(query)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}
	if offset > 0 {
		params.Set("offset", fmt.Sprintf("%d", offset))
	}

	endpoint := fmt.Sprintf("search.json?%s", params.Encode())

	var searchResp searchResponse
	if err := c.makeAPIRequest(ctx, endpoint, &searchResp); err != nil {
		return nil, err
	}

	page := &SearchPage{
		Books:  make([]models.Book, 0, len(searchResp.Docs)),
		Total:  searchResp.NumFound,
		Offset: searchResp.Start,
	}

	for _, d := range searchResp.Docs {
		if strings.TrimSpace(d.Title) == "" {
			continue
		}
		book := c.mapDoc(d)
		if query.Format != "" && book.Format != query.Format {
			continue
		}
		page.Books = append(page.Books, book)
	}

	return page, nil
}

// GetWork fetches the detail record for one work key (e.g. /works/OL45804W).
func (c *Client) GetWork(ctx context.Context, workKey string) (*WorkDetail, error) {
	workKey = strings.TrimSpace(workKey)
	if workKey == "" {
		return nil, apperrors.MissingFieldError("workKey")
	}
	if !strings.HasPrefix(workKey, "/works/") {
		workKey = "/works/" + strings.TrimPrefix(workKey, "/")
	}

	endpoint := strings.TrimPrefix(workKey, "/") + ".json"

	var workResp workResponse
	if err := c.makeAPIRequest(ctx, endpoint, &workResp); err != nil {
		return nil, err
	}

	detail := &WorkDetail{
		Key:         workKey,
		Title:       strings.TrimSpace(workResp.Title),
		Description: string(workResp.Description),
		Subjects:    workResp.Subjects,
		Format:      models.FormatFromEbookAccess(workResp.EbookAccess),
		SourceURL:   c.baseURL + workKey,
	}
	if len(workResp.Covers) > 0 && workResp.Covers[0] > 0 {
		detail.CoverURL = c.coverURL(workResp.Covers[0])
	}
	if len(workResp.Languages) > 0 {
		detail.Language = strings.TrimPrefix(workResp.Languages[0].Key, "/languages/")
	}
	if len(workResp.Authors) > 0 {
		detail.Author = c.resolveAuthorName(ctx, workResp.Authors[0].Author.Key)
	}

	return detail, nil
}

// resolveAuthorName looks up the display name behind an author key.
// Failures degrade to an empty name; the detail view stays usable.
func (c *Client) resolveAuthorName(ctx context.Context, authorKey string) string {
	if authorKey == "" {
		return ""
	}

	endpoint := strings.TrimPrefix(authorKey, "/") + ".json"

	var authorResp struct {
		Name string `json:"name"`
	}
	if err := c.makeAPIRequest(ctx, endpoint, &authorResp); err != nil {
		return ""
	}
	return strings.TrimSpace(authorResp.Name)
}

// mapDoc maps one raw search record into a normalized Book with explicit
// handling for each optional field.
func (c *Client) mapDoc(d doc) models.Book {
	book := models.Book{
		Title:       strings.TrimSpace(d.Title),
		PublishYear: d.FirstPublishYear,
		Format:      models.FormatFromEbookAccess(d.EbookAccess),
		Subjects:    d.Subject,
	}
	if len(d.AuthorName) > 0 {
		book.Author = strings.TrimSpace(d.AuthorName[0])
	}
	if len(d.Publisher) > 0 {
		book.Publisher = strings.TrimSpace(d.Publisher[0])
	}
	if len(d.Language) > 0 {
		book.Language = d.Language[0]
	}
	if d.CoverID != nil && *d.CoverID > 0 {
		book.CoverURL = c.coverURL(*d.CoverID)
	}
	if d.Key != "" {
		book.SourceURL = c.baseURL + d.Key
	}
	return book
}

func (c *Client) coverURL(coverID int64) string {
	return fmt.Sprintf("%s/b/id/%d-M.jpg", c.coversURL, coverID)
}

// buildSearchParams translates a query into search.json parameters.
// Simple author/title lookups use the dedicated parameters; combined
// criteria are expressed with the q= field syntax.
func buildSearchParams(query Query) (url.Values, error) {
	params := url.Values{}

	if !query.IsAdvanced() {
		if author := strings.TrimSpace(query.Author); author != "" {
			params.Set("author", author)
			return params, nil
		}
		if title := strings.TrimSpace(query.Title); title != "" {
			params.Set("title", title)
			return params, nil
		}
	}

	var terms []string
	if title := strings.TrimSpace(query.Title); title != "" {
		terms = append(terms, fmt.Sprintf("title:%q", title))
	}
	if author := strings.TrimSpace(query.Author); author != "" {
		terms = append(terms, fmt.Sprintf("author:%q", author))
	}
	if query.Language != "" {
		terms = append(terms, "language:"+query.Language)
	}
	if query.FromYear != nil || query.ToYear != nil {
		from, to := "*", "*"
		if query.FromYear != nil {
			from = fmt.Sprintf("%d", *query.FromYear)
		}
		if query.ToYear != nil {
			to = fmt.Sprintf("%d", *query.ToYear)
		}
		terms = append(terms, fmt.Sprintf("first_publish_year:[%s TO %s]", from, to))
	}

	if len(terms) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "search query has no criteria")
	}

	params.Set("q", strings.Join(terms, " "))
	return params, nil
}
