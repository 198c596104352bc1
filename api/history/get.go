package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
	apperrors "github.com/bookradar/bookradar-api/pkg/errors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// GetSearchHistory handles GET /api/v1/history
//
//	@Summary		List recent searches
//	@Description	Returns the persisted search log, newest first
//	@Tags			history
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum rows to return (default 50, max 500)"
//	@Success		200		{object}	types.SearchHistoryResponse
//	@Failure		400		{object}	types.ErrorResponse	"Invalid limit"
//	@Router			/api/v1/history [get]
func GetSearchHistory(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := parseLimit(c)
		if !ok {
			return
		}
		if deps.History == nil {
			historyUnavailable(c)
			return
		}

		searches, err := deps.History.RecentSearches(c.Request.Context(), limit)
		if err != nil {
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list search history",
				Error:   string(apperrors.ErrCodeDatabaseQuery),
			})
			return
		}

		c.JSON(http.StatusOK, types.SearchHistoryResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search history retrieved",
			},
			Searches: searches,
			Count:    len(searches),
		})
	}
}

// GetViewHistory handles GET /api/v1/views
//
//	@Summary		List recent views
//	@Description	Returns the persisted view log, newest first
//	@Tags			history
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum rows to return (default 50, max 500)"
//	@Success		200		{object}	types.ViewHistoryResponse
//	@Failure		400		{object}	types.ErrorResponse	"Invalid limit"
//	@Router			/api/v1/views [get]
func GetViewHistory(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := parseLimit(c)
		if !ok {
			return
		}
		if deps.History == nil {
			historyUnavailable(c)
			return
		}

		views, err := deps.History.RecentViews(c.Request.Context(), limit)
		if err != nil {
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list view history",
				Error:   string(apperrors.ErrCodeDatabaseQuery),
			})
			return
		}

		c.JSON(http.StatusOK, types.ViewHistoryResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "View history retrieved",
			},
			Views: views,
			Count: len(views),
		})
	}
}

// parseLimit reads the limit query parameter, applying the default and
// the cap. It writes the error response itself and returns ok=false on
// invalid input.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "limit must be a positive integer",
			Error:   string(apperrors.ErrCodeInvalidInput),
		})
		return 0, false
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, true
}

func historyUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
		Status:  types.StatusError,
		Message: "History is not available",
		Error:   string(apperrors.ErrCodeInternal),
	})
}
