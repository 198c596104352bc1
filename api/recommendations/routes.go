package recommendations

import (
	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
)

// RegisterRoutes registers the recommendation routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", GetRecommendations(deps))
}
