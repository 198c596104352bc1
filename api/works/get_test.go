package works

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookradar/bookradar-api/api/types"
	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/history"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
	apperrors "github.com/bookradar/bookradar-api/pkg/errors"
)

type fakeWorkFetcher struct {
	lastKey string
	work    *openlibrary.WorkDetail
	err     error
}

func (f *fakeWorkFetcher) GetWork(ctx context.Context, key string) (*openlibrary.WorkDetail, error) {
	f.lastKey = key
	return f.work, f.err
}

type fakeViewRecorder struct {
	viewed    []models.Book
	ipAddress string
	userAgent string
	err       error
}

func (f *fakeViewRecorder) RecordSearch(ctx context.Context, query openlibrary.Query, books []models.Book) (*history.Outcome, error) {
	return nil, nil
}

func (f *fakeViewRecorder) RecordView(ctx context.Context, book models.Book, ipAddress, userAgent string) error {
	f.viewed = append(f.viewed, book)
	f.ipAddress = ipAddress
	f.userAgent = userAgent
	return f.err
}

func (f *fakeViewRecorder) RecentSearches(ctx context.Context, limit int) ([]models.SearchHistory, error) {
	return nil, nil
}

func (f *fakeViewRecorder) RecentViews(ctx context.Context, limit int) ([]models.ViewHistory, error) {
	return nil, nil
}

func setupWorksRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/works"), deps)
	return router
}

func TestGetWork_Success(t *testing.T) {
	fetcher := &fakeWorkFetcher{
		work: &openlibrary.WorkDetail{
			Key:      "/works/OL45883W",
			Title:    "Ficciones",
			Author:   "Jorge Luis Borges",
			Subjects: []string{"Short stories"},
		},
	}
	recorder := &fakeViewRecorder{}
	router := setupWorksRouter(&types.Dependencies{LibraryClient: fetcher, History: recorder})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/works/OL45883W", nil)
	req.Header.Set("User-Agent", "bookradar-test/1.0")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.WorkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusOK, resp.Status)
	require.NotNil(t, resp.Work)
	assert.Equal(t, "Ficciones", resp.Work.Title)
	assert.Equal(t, "OL45883W", fetcher.lastKey)

	require.Len(t, recorder.viewed, 1)
	assert.Equal(t, "Ficciones", recorder.viewed[0].Title)
	assert.Equal(t, "bookradar-test/1.0", recorder.userAgent)
	assert.NotEmpty(t, recorder.ipAddress)
}

func TestGetWork_NotFound(t *testing.T) {
	fetcher := &fakeWorkFetcher{err: apperrors.NotFound("work", "OL0W")}
	router := setupWorksRouter(&types.Dependencies{LibraryClient: fetcher})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/works/OL0W", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Work not found", resp.Message)
	assert.Equal(t, string(apperrors.ErrCodeNotFound), resp.Error)
}

func TestGetWork_UpstreamFailure(t *testing.T) {
	fetcher := &fakeWorkFetcher{err: apperrors.UpstreamError("get work", errors.New("timeout"))}
	router := setupWorksRouter(&types.Dependencies{LibraryClient: fetcher})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/works/OL45883W", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetWork_ViewRecordingFailureDegrades(t *testing.T) {
	fetcher := &fakeWorkFetcher{work: &openlibrary.WorkDetail{Key: "/works/OL45883W", Title: "Ficciones"}}
	recorder := &fakeViewRecorder{err: errors.New("disk full")}
	router := setupWorksRouter(&types.Dependencies{LibraryClient: fetcher, History: recorder})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/works/OL45883W", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetWork_NoClientConfigured(t *testing.T) {
	router := setupWorksRouter(&types.Dependencies{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/works/OL45883W", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
