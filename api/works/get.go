package works

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
	apperrors "github.com/bookradar/bookradar-api/pkg/errors"
)

// workFetcher is the slice of the catalog client this handler needs
type workFetcher interface {
	GetWork(ctx context.Context, key string) (*openlibrary.WorkDetail, error)
}

// GetWork handles GET /api/v1/works/:key
//
//	@Summary		Get work details
//	@Description	Fetches the full detail of a single catalog work and records the view
//	@Tags			works
//	@Produce		json
//	@Param			key	path		string	true	"Work key, e.g. OL45883W"
//	@Success		200	{object}	types.WorkResponse
//	@Failure		404	{object}	types.ErrorResponse	"Work not found"
//	@Failure		502	{object}	types.ErrorResponse	"Upstream catalog unavailable"
//	@Router			/api/v1/works/{key} [get]
func GetWork(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Work key is required",
				Error:   string(apperrors.ErrCodeMissingField),
			})
			return
		}

		fetcher, ok := deps.LibraryClient.(workFetcher)
		if !ok {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Catalog lookups are not available",
				Error:   string(apperrors.ErrCodeInternal),
			})
			return
		}

		work, err := fetcher.GetWork(c.Request.Context(), key)
		if err != nil {
			status := apperrors.GetHTTPCode(err)
			message := "Failed to fetch the work"
			if apperrors.Is(err, apperrors.ErrCodeNotFound) {
				message = "Work not found"
			}
			c.JSON(status, types.ErrorResponse{
				Status:  types.StatusError,
				Message: message,
				Error:   errorCode(err),
			})
			return
		}

		if deps.History != nil {
			// View tracking is best-effort and must not fail the lookup
			if err := deps.History.RecordView(c.Request.Context(), work.Book(), c.ClientIP(), c.Request.UserAgent()); err != nil {
				log.Printf("[WARN] Failed to record view for %s: %v", work.Key, err)
			}
		}

		c.JSON(http.StatusOK, types.WorkResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Work retrieved",
			},
			Work: work,
		})
	}
}

func errorCode(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return string(appErr.Code)
	}
	return string(apperrors.ErrCodeInternal)
}
