package search

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
	"github.com/bookradar/bookradar-api/internal/services/history"
	"github.com/bookradar/bookradar-api/internal/services/search"
	apperrors "github.com/bookradar/bookradar-api/pkg/errors"
)

// PostSearch handles POST /api/v1/search
//
//	@Summary		Search for books
//	@Description	Searches the OpenLibrary catalog by author, title, or advanced criteria and returns an ordered result set
//	@Tags			search
//	@Accept			json
//	@Produce		json
//	@Param			request	body		types.SearchRequest	true	"Search criteria"
//	@Success		200		{object}	types.BookSearchResponse
//	@Failure		400		{object}	types.ErrorResponse	"Invalid search criteria"
//	@Failure		502		{object}	types.ErrorResponse	"Upstream catalog unavailable"
//	@Router			/api/v1/search [post]
func PostSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request body",
				Error:   string(apperrors.ErrCodeInvalidInput),
			})
			return
		}

		if fields := req.Validate(); len(fields) > 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid search criteria",
				Error:   string(apperrors.ErrCodeValidation),
				Details: fields,
			})
			return
		}

		if deps.Aggregator == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Search is not available",
				Error:   string(apperrors.ErrCodeInternal),
			})
			return
		}

		query := req.Query()
		result, err := fetch(c, deps.Aggregator, req, pageSize(deps))
		if err != nil {
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to search the catalog",
				Error:   errorCode(err),
			})
			return
		}

		var outcome *history.Outcome
		if deps.History != nil {
			outcome, err = deps.History.RecordSearch(c.Request.Context(), query, result.Books)
			if err != nil {
				// Persistence failures must not break the search itself
				log.Printf("[WARN] Failed to record search history: %v", err)
				outcome = nil
			}
		}

		c.JSON(http.StatusOK, types.BookSearchResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search complete",
			},
			Books:      result.Books,
			Count:      len(result.Books),
			Total:      result.Total,
			Truncated:  result.Truncated,
			NextOffset: result.NextOffset,
			History:    outcome,
		})
	}
}

// fetch routes the request to the aggregation strategy its flags select:
// exhaustive wins over everything, a custom mode with an above-page limit
// fetches up to that limit, anything else is a single page.
func fetch(c *gin.Context, aggregator search.Aggregating, req types.SearchRequest, pageSize int) (*search.Result, error) {
	ctx := c.Request.Context()
	query := req.Query()

	switch {
	case req.Exhaustive:
		return aggregator.FetchExhaustive(ctx, query)
	case req.Mode == types.SearchModeCustom && req.Limit > pageSize:
		return aggregator.FetchWithLimit(ctx, query, req.Limit)
	default:
		return aggregator.FetchStandard(ctx, query, req.Limit)
	}
}

func pageSize(deps *types.Dependencies) int {
	if deps.Config != nil && deps.Config.Search.PageSize > 0 {
		return deps.Config.Search.PageSize
	}
	return search.DefaultPageSize
}

func errorCode(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return string(appErr.Code)
	}
	return string(apperrors.ErrCodeInternal)
}
