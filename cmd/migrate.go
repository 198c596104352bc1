package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookradar/bookradar-api/internal/database"
	"github.com/bookradar/bookradar-api/internal/models"
	recommendationService "github.com/bookradar/bookradar-api/internal/services/recommendations"
	"github.com/bookradar/bookradar-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Bring the BookRadar database schema up to date.

Creates or updates the search history, view history, and recommendation
tables. With --seed, a small starter set of recommendations is inserted
when the table is empty.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().Bool("seed", false, "insert starter recommendations when the table is empty")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(
		&models.SearchHistory{},
		&models.ViewHistory{},
		&models.Recommendation{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date")

	seed, _ := cmd.Flags().GetBool("seed")
	if !seed {
		return nil
	}

	var count int64
	if err := db.DB.Model(&models.Recommendation{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check recommendations: %w", err)
	}
	if count > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Recommendations already present (%d rows), skipping seed\n", count)
		return nil
	}

	repo := recommendationService.NewRepository(db.DB)
	if err := repo.InsertBatch(context.Background(), starterRecommendations()); err != nil {
		return fmt.Errorf("failed to seed recommendations: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Seeded starter recommendations")

	return nil
}

// starterRecommendations is a small hand-picked set so a fresh install
// has something to serve before any generation job runs.
func starterRecommendations() []models.Recommendation {
	now := time.Now()
	year := func(y int) *int { return &y }

	return []models.Recommendation{
		{
			SourceTitle:        "Ficciones",
			SourceAuthor:       "Jorge Luis Borges",
			RecommendedTitle:   "El Aleph",
			RecommendedAuthor:  "Jorge Luis Borges",
			Genre:              "short stories",
			Language:           "spa",
			PublishYear:        year(1949),
			Format:             models.FormatPublicEbook,
			SimilarityScore:    0.95,
			RecommendationType: models.RecommendationByAuthor,
			Active:             true,
			GeneratedAt:        now,
		},
		{
			SourceTitle:        "Ficciones",
			SourceAuthor:       "Jorge Luis Borges",
			RecommendedTitle:   "Rayuela",
			RecommendedAuthor:  "Julio Cortázar",
			Genre:              "fiction",
			Language:           "spa",
			PublishYear:        year(1963),
			Format:             models.FormatLendableEbook,
			SimilarityScore:    0.82,
			RecommendationType: models.RecommendationByLanguage,
			Active:             true,
			GeneratedAt:        now,
		},
		{
			SourceTitle:        "One Hundred Years of Solitude",
			SourceAuthor:       "Gabriel García Márquez",
			RecommendedTitle:   "The House of the Spirits",
			RecommendedAuthor:  "Isabel Allende",
			Genre:              "magical realism",
			Language:           "eng",
			PublishYear:        year(1982),
			Format:             models.FormatLendableEbook,
			SimilarityScore:    0.88,
			RecommendationType: models.RecommendationByGenre,
			Active:             true,
			GeneratedAt:        now,
		},
	}
}
