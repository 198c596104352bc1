package version

import (
	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
)

// RegisterRoutes registers the version routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	engine.GET("/version", GetVersion(deps))
}
