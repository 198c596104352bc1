package recommendations

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
	"github.com/bookradar/bookradar-api/internal/models"
	"github.com/bookradar/bookradar-api/internal/services/recommendations"
	apperrors "github.com/bookradar/bookradar-api/pkg/errors"
)

// GetRecommendations handles GET /api/v1/recommendations
//
//	@Summary		List recommendations
//	@Description	Returns stored recommendations, optionally filtered or personalized from recent views
//	@Tags			recommendations
//	@Produce		json
//	@Param			genre		query		string	false	"Filter by genre"
//	@Param			language	query		string	false	"Filter by language"
//	@Param			format		query		string	false	"Filter by format"
//	@Param			limit		query		int		false	"Maximum rows to return"
//	@Param			for_views	query		bool	false	"Personalize from recent view history"
//	@Success		200			{object}	types.RecommendationsResponse
//	@Failure		400			{object}	types.ErrorResponse	"Invalid query parameters"
//	@Router			/api/v1/recommendations [get]
func GetRecommendations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Recommender == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Recommendations are not available",
				Error:   string(apperrors.ErrCodeInternal),
			})
			return
		}

		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "limit must be a positive integer",
					Error:   string(apperrors.ErrCodeInvalidInput),
				})
				return
			}
			limit = parsed
		}

		var (
			rows []models.Recommendation
			err  error
		)
		if c.Query("for_views") == "true" {
			rows, err = deps.Recommender.ForRecentViews(c.Request.Context(), limit)
		} else {
			rows, err = deps.Recommender.List(c.Request.Context(), recommendations.Filter{
				Genre:    c.Query("genre"),
				Language: c.Query("language"),
				Format:   c.Query("format"),
				Limit:    limit,
			})
		}
		if err != nil {
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list recommendations",
				Error:   string(apperrors.ErrCodeDatabaseQuery),
			})
			return
		}

		c.JSON(http.StatusOK, types.RecommendationsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Recommendations retrieved",
			},
			Recommendations: rows,
			Count:           len(rows),
		})
	}
}
