package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookradar/bookradar-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookradar-api",
	Short: "BookRadar book search API server",
	Long: `BookRadar API - a book search and discovery service

This API searches the OpenLibrary catalog by author, title, or advanced
criteria, keeps a history of searches and detail views, and serves book
recommendations.

Features:
  • Author, title, and multi-criteria catalog search
  • Concurrent pagination with exhaustive and capped fetch modes
  • Search and view history stored in SQLite
  • Stored recommendations, optionally personalized from recent views`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help runs skip it so they work without a config file.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
