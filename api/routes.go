package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/bookradar/bookradar-api/api/health"
	historyRoutes "github.com/bookradar/bookradar-api/api/history"
	recommendationRoutes "github.com/bookradar/bookradar-api/api/recommendations"
	"github.com/bookradar/bookradar-api/api/search"
	"github.com/bookradar/bookradar-api/api/types"
	"github.com/bookradar/bookradar-api/api/version"
	"github.com/bookradar/bookradar-api/api/works"
	_ "github.com/bookradar/bookradar-api/docs/swagger"
	historyService "github.com/bookradar/bookradar-api/internal/services/history"
	"github.com/bookradar/bookradar-api/internal/services/openlibrary"
	recommendationService "github.com/bookradar/bookradar-api/internal/services/recommendations"
	searchService "github.com/bookradar/bookradar-api/internal/services/search"
	"github.com/bookradar/bookradar-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	deps.Config = cfg

	// Initialize the OpenLibrary client if not set
	if deps.LibraryClient == nil {
		deps.LibraryClient = openlibrary.NewClient(openlibrary.Config{
			BaseURL:   cfg.OpenLibrary.BaseURL,
			CoversURL: cfg.OpenLibrary.CoversURL,
			UserAgent: cfg.OpenLibrary.UserAgent,
			Timeout:   cfg.OpenLibrary.Timeout,
		})
	}

	// Initialize the aggregator over the client if not set
	if deps.Aggregator == nil {
		if fetcher, ok := deps.LibraryClient.(searchService.PageFetcher); ok {
			deps.Aggregator = searchService.NewAggregator(
				fetcher,
				searchService.WithPageSize(cfg.Search.PageSize),
				searchService.WithMaxPages(cfg.Search.MaxPages),
				searchService.WithMaxConcurrentPages(cfg.Search.MaxConcurrentPages),
			)
		}
	}

	// Initialize persistence-backed services if the database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.History == nil {
			historyRepo := historyService.NewRepository(deps.DB.DB)
			deps.History = historyService.NewService(
				historyRepo,
				historyService.WithDedupWindow(cfg.History.DedupWindow),
			)
		}

		if deps.Recommender == nil {
			recommendationRepo := recommendationService.NewRepository(deps.DB.DB)
			historyRepo := historyService.NewRepository(deps.DB.DB)
			deps.Recommender = recommendationService.NewService(
				recommendationRepo,
				historyRepo,
				recommendationService.WithDefaultLimit(cfg.Recommendations.DefaultLimit),
				recommendationService.WithRecentViewCount(cfg.Recommendations.RecentViewCount),
			)
		}
	}

	// Register search routes with dedicated rate limiting (5 req/s, burst of 10)
	searchGroup := v1.Group("/search")
	searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	search.RegisterRoutes(searchGroup, deps)

	// Register work detail routes with general rate limiting (10 req/s, burst of 20)
	worksGroup := v1.Group("/works")
	worksGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	works.RegisterRoutes(worksGroup, deps)

	// Register history routes with general rate limiting (10 req/s, burst of 20)
	historyGroup := v1.Group("")
	historyGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	historyRoutes.RegisterRoutes(historyGroup, deps)

	// Register recommendation routes with general rate limiting (10 req/s, burst of 20)
	recommendationsGroup := v1.Group("/recommendations")
	recommendationsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	recommendationRoutes.RegisterRoutes(recommendationsGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
