package version

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
	"github.com/bookradar/bookradar-api/pkg/version"
)

// VersionResponse reports build information
type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// GetVersion handles GET /version
//
//	@Summary		Build information
//	@Description	Returns the running build's version, commit, and build date
//	@Tags			version
//	@Produce		json
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, VersionResponse{
			Version:   version.Version,
			GitCommit: version.GitCommit,
			BuildDate: version.BuildDate,
			GoVersion: runtime.Version(),
		})
	}
}
