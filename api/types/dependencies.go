package types

import (
	"github.com/bookradar/bookradar-api/internal/database"
	"github.com/bookradar/bookradar-api/internal/services/history"
	"github.com/bookradar/bookradar-api/internal/services/recommendations"
	"github.com/bookradar/bookradar-api/internal/services/search"
	"github.com/bookradar/bookradar-api/pkg/config"
)

// Dependencies holds everything the handlers need. LibraryClient is kept
// loosely typed so handlers can assert the narrow interface they use.
type Dependencies struct {
	DB            *database.DB
	Config        *config.Config
	LibraryClient interface{}
	Aggregator    search.Aggregating
	History       history.Recorder
	Recommender   recommendations.Recommender
}
