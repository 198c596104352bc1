package search_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookradar/bookradar-api/api"
	"github.com/bookradar/bookradar-api/api/types"
	"github.com/bookradar/bookradar-api/internal/database"
	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
	searchService "github.com/bookradar/bookradar-api/internal/services/search"
	"github.com/bookradar/bookradar-api/pkg/config"
)

type IntegrationTestSuite struct {
	t          *testing.T
	db         *gorm.DB
	deps       *types.Dependencies
	router     *gin.Engine
	aggregator *stubAggregator
}

// stubAggregator stands in for the upstream catalog so the suite
// exercises everything below it against a real database.
type stubAggregator struct {
	mu     sync.Mutex
	result *searchService.Result
	err    error
}

func (s *stubAggregator) setResult(books []models.Book, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &searchService.Result{Books: books, Total: total}
}

func (s *stubAggregator) FetchStandard(ctx context.Context, query openlibrary.Query, limit int) (*searchService.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.err
}

func (s *stubAggregator) FetchWithLimit(ctx context.Context, query openlibrary.Query, limit int) (*searchService.Result, error) {
	return s.FetchStandard(ctx, query, limit)
}

func (s *stubAggregator) FetchExhaustive(ctx context.Context, query openlibrary.Query) (*searchService.Result, error) {
	return s.FetchStandard(ctx, query, 0)
}

func setupIntegrationTestSuite(t *testing.T) *IntegrationTestSuite {
	gin.SetMode(gin.TestMode)

	require.NoError(t, config.Init(), "Failed to initialize config")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(
		&models.SearchHistory{},
		&models.ViewHistory{},
		&models.Recommendation{},
	)
	require.NoError(t, err, "Failed to migrate test database")

	aggregator := &stubAggregator{result: &searchService.Result{Books: []models.Book{}}}

	deps := &types.Dependencies{
		DB:         &database.DB{DB: db},
		Aggregator: aggregator,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	cleanupInitialized := &sync.Once{}

	err = api.RegisterRoutes(router, deps, rateLimiters, cleanupStop, cleanupInitialized)
	require.NoError(t, err, "Failed to register routes")

	t.Cleanup(func() { close(cleanupStop) })

	return &IntegrationTestSuite{
		t:          t,
		db:         db,
		deps:       deps,
		router:     router,
		aggregator: aggregator,
	}
}

func (suite *IntegrationTestSuite) postSearch(body types.SearchRequest) *httptest.ResponseRecorder {
	suite.t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(suite.t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) get(path string) *httptest.ResponseRecorder {
	suite.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func TestSearchPersistsHistory(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	year := 1944
	suite.aggregator.setResult([]models.Book{
		{Title: "Ficciones", Author: "Jorge Luis Borges", PublishYear: &year},
		{Title: "El Aleph", Author: "Jorge Luis Borges"},
	}, 2)

	w := suite.postSearch(types.SearchRequest{Author: "Jorge Luis Borges"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.BookSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.NotNil(t, resp.History)
	assert.Equal(t, 2, resp.History.Rows)

	var rows []models.SearchHistory
	require.NoError(t, suite.db.Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jorge Luis Borges", rows[0].Author)
	assert.Equal(t, rows[0].SearchedAt, rows[1].SearchedAt, "one search stamps all rows with the same time")

	history := suite.get("/api/v1/history")
	require.Equal(t, http.StatusOK, history.Code)

	var listing types.SearchHistoryResponse
	require.NoError(t, json.Unmarshal(history.Body.Bytes(), &listing))
	assert.Equal(t, 2, listing.Count)
}

func TestRepeatedSearchIsDeduplicated(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	suite.aggregator.setResult([]models.Book{{Title: "Ficciones", Author: "Jorge Luis Borges"}}, 1)

	first := suite.postSearch(types.SearchRequest{Author: "Jorge Luis Borges"})
	require.Equal(t, http.StatusOK, first.Code)

	second := suite.postSearch(types.SearchRequest{Author: "Jorge Luis Borges"})
	require.Equal(t, http.StatusOK, second.Code)

	var resp types.BookSearchResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	require.NotNil(t, resp.History)
	assert.Equal(t, "recent_duplicate", string(resp.History.Status))
	assert.Equal(t, 1, resp.Count, "dedup affects persistence only, results still come back")

	var count int64
	require.NoError(t, suite.db.Model(&models.SearchHistory{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecommendationsServedFromDatabase(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	rows := []models.Recommendation{
		{
			SourceTitle:      "Ficciones",
			RecommendedTitle: "El Aleph",
			Genre:            "short stories",
			Language:         "spa",
			SimilarityScore:  0.95,
			Active:           true,
			GeneratedAt:      time.Now(),
		},
		{
			SourceTitle:      "Ficciones",
			RecommendedTitle: "Rayuela",
			Genre:            "fiction",
			Language:         "spa",
			SimilarityScore:  0.82,
			Active:           true,
			GeneratedAt:      time.Now(),
		},
		{
			SourceTitle:      "Dracula",
			RecommendedTitle: "Frankenstein",
			Genre:            "horror",
			Language:         "eng",
			SimilarityScore:  0.90,
			Active:           false,
			GeneratedAt:      time.Now(),
		},
	}
	require.NoError(t, suite.db.Create(&rows).Error)

	w := suite.get("/api/v1/recommendations?language=spa")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.RecommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count, "inactive rows are excluded")
	assert.Equal(t, "El Aleph", resp.Recommendations[0].RecommendedTitle, "highest score first")
}

func TestHealthEndpoint(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	w := suite.get("/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
}
