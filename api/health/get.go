package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
)

// HealthResponse reports service and database status
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// GetHealth handles GET /health
//
//	@Summary		Health check
//	@Description	Reports service liveness and database connectivity
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse	"Database unreachable"
//	@Router			/health [get]
func GetHealth(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := HealthResponse{
			Status:    "ok",
			Database:  "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		if deps == nil || deps.DB == nil {
			resp.Database = "not configured"
			c.JSON(http.StatusOK, resp)
			return
		}

		if err := deps.DB.HealthCheck(); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
