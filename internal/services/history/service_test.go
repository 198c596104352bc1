package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) InsertSearches(ctx context.Context, rows []models.SearchHistory) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *MockRepository) ExistsAuthorSince(ctx context.Context, author string, since time.Time) (bool, error) {
	args := m.Called(ctx, author, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ExistsTitleSince(ctx context.Context, title string, since time.Time) (bool, error) {
	args := m.Called(ctx, title, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListSearches(ctx context.Context, limit int) ([]models.SearchHistory, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SearchHistory), args.Error(1)
}

func (m *MockRepository) InsertView(ctx context.Context, row *models.ViewHistory) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockRepository) ListViews(ctx context.Context, limit int) ([]models.ViewHistory, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ViewHistory), args.Error(1)
}

func someBooks() []models.Book {
	y := 1944
	return []models.Book{
		{Title: "Ficciones", PublishYear: &y, Publisher: "Sur"},
		{Title: "El Aleph"},
	}
}

func TestRecordSearch_Saved(t *testing.T) {
	mockRepo := new(MockRepository)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := NewService(mockRepo, withNow(func() time.Time { return fixed }))

	mockRepo.On("ExistsAuthorSince", mock.Anything, "Borges", fixed.Add(-time.Minute)).Return(false, nil)
	mockRepo.On("InsertSearches", mock.Anything, mock.MatchedBy(func(rows []models.SearchHistory) bool {
		if len(rows) != 2 {
			return false
		}
		for _, r := range rows {
			// Every row of a batch carries the same capture time
			if r.Author != "Borges" || !r.SearchedAt.Equal(fixed) {
				return false
			}
		}
		return rows[0].Title == "Ficciones" && rows[1].Title == "El Aleph"
	})).Return(nil)

	outcome, err := service.RecordSearch(context.Background(), openlibrary.Query{Author: "Borges"}, someBooks())
	require.NoError(t, err)

	assert.Equal(t, StatusSaved, outcome.Status)
	assert.Equal(t, 2, outcome.Rows)
	mockRepo.AssertExpectations(t)
}

func TestRecordSearch_RecentDuplicateSkipsWrite(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("ExistsAuthorSince", mock.Anything, "Borges", mock.Anything).Return(true, nil)

	outcome, err := service.RecordSearch(context.Background(), openlibrary.Query{Author: "Borges"}, someBooks())
	require.NoError(t, err)

	assert.Equal(t, StatusSkippedRecent, outcome.Status)
	assert.Zero(t, outcome.Rows)
	mockRepo.AssertNotCalled(t, "InsertSearches", mock.Anything, mock.Anything)
}

func TestRecordSearch_OutsideWindowWritesAgain(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	// 61+ seconds later the recency check comes back clean and a second
	// independent batch is written.
	mockRepo.On("ExistsAuthorSince", mock.Anything, "Borges", mock.Anything).Return(false, nil)
	mockRepo.On("InsertSearches", mock.Anything, mock.Anything).Return(nil)

	outcome, err := service.RecordSearch(context.Background(), openlibrary.Query{Author: "Borges"}, someBooks())
	require.NoError(t, err)
	assert.Equal(t, StatusSaved, outcome.Status)
	mockRepo.AssertExpectations(t)
}

func TestRecordSearch_TitleQueryUsesTitleKey(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("ExistsTitleSince", mock.Anything, "Dune", mock.Anything).Return(false, nil)
	mockRepo.On("InsertSearches", mock.Anything, mock.MatchedBy(func(rows []models.SearchHistory) bool {
		return len(rows) == 2 && rows[0].Author == models.TitleSearchAuthor
	})).Return(nil)

	outcome, err := service.RecordSearch(context.Background(), openlibrary.Query{Title: "Dune"}, someBooks())
	require.NoError(t, err)
	assert.Equal(t, StatusSaved, outcome.Status)
	mockRepo.AssertNotCalled(t, "ExistsAuthorSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSearch_NoResultsNoWrite(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("ExistsAuthorSince", mock.Anything, "Borges", mock.Anything).Return(false, nil)

	outcome, err := service.RecordSearch(context.Background(), openlibrary.Query{Author: "Borges"}, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusNoResults, outcome.Status)
	mockRepo.AssertNotCalled(t, "InsertSearches", mock.Anything, mock.Anything)
}

func TestRecordSearch_CustomWindow(t *testing.T) {
	mockRepo := new(MockRepository)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := NewService(mockRepo,
		WithDedupWindow(5*time.Minute),
		withNow(func() time.Time { return fixed }),
	)

	mockRepo.On("ExistsAuthorSince", mock.Anything, "Borges", fixed.Add(-5*time.Minute)).Return(true, nil)

	outcome, err := service.RecordSearch(context.Background(), openlibrary.Query{Author: "Borges"}, someBooks())
	require.NoError(t, err)
	assert.Equal(t, StatusSkippedRecent, outcome.Status)
	mockRepo.AssertExpectations(t)
}

func TestRecordSearch_InsertFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("ExistsAuthorSince", mock.Anything, "Borges", mock.Anything).Return(false, nil)
	mockRepo.On("InsertSearches", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := service.RecordSearch(context.Background(), openlibrary.Query{Author: "Borges"}, someBooks())
	assert.Error(t, err)
}

func TestRecordView(t *testing.T) {
	mockRepo := new(MockRepository)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service := NewService(mockRepo, withNow(func() time.Time { return fixed }))

	mockRepo.On("InsertView", mock.Anything, mock.MatchedBy(func(row *models.ViewHistory) bool {
		return row.Title == "Ficciones" &&
			row.IPAddress == "10.0.0.1" &&
			row.UserAgent == "test-agent" &&
			row.ViewedAt.Equal(fixed)
	})).Return(nil)

	err := service.RecordView(context.Background(), models.Book{Title: "Ficciones"}, "10.0.0.1", "test-agent")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRecentSearches(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	expected := []models.SearchHistory{{Author: "Borges", Title: "Ficciones"}}
	mockRepo.On("ListSearches", mock.Anything, 50).Return(expected, nil)

	rows, err := service.RecentSearches(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}
