package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/filmboard/filmboard/internal/config"
	"github.com/filmboard/filmboard/internal/fetcher"
	"github.com/filmboard/filmboard/internal/scraper"
	"github.com/filmboard/filmboard/internal/storage"
	"github.com/filmboard/filmboard/internal/web"
)

var (
	cfgFile   string
	verbose   bool
	jsonPath  string
	dbPath    string
	allTables bool
	indexURL  string
	webPort   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "filmboard",
		Short: "filmboard — highest-grossing films scraper and table",
		Long: `filmboard scrapes the Wikipedia highest-grossing films list, normalizes
each film's infobox into a flat record, and republishes the result as a
SQLite table and a static JSON file consumed by a small browser table.`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(scrapeCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// scrapeCmd creates the "scrape" subcommand.
func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run the one-shot scrape and export",
		Long:  "Fetch the index page, scrape every linked film page concurrently, and replace the SQLite table and JSON export with the result.",
		RunE:  runScrape,
	}

	cmd.Flags().StringVarP(&jsonPath, "output", "o", "", "JSON output file path")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file path")
	cmd.Flags().BoolVarP(&allTables, "all-tables", "a", false, "scrape every ranked table, not just the first")
	cmd.Flags().StringVar(&indexURL, "index-url", "", "index page URL override")

	return cmd
}

// runScrape executes the scrape command.
func runScrape(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger.Info("starting scrape",
		"index_url", cfg.Scraper.IndexURL,
		"all_tables", cfg.Scraper.AllTables,
		"db", cfg.Storage.DatabasePath,
		"json", cfg.Storage.JSONPath,
	)

	httpFetcher := fetcher.NewHTTPFetcher(cfg, logger)
	defer httpFetcher.Close()

	store, err := buildStorage(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	start := time.Now()
	records := scraper.New(httpFetcher, &cfg.Scraper, logger).Run(context.Background())

	if err := store.Store(records); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	elapsed := time.Since(start)
	logger.Info("scrape finished", "records", len(records), "elapsed", elapsed)

	fmt.Printf("\n✅ Scrape complete in %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("   Films:     %d\n", len(records))
	fmt.Printf("   Database:  %s\n", cfg.Storage.DatabasePath)
	fmt.Printf("   JSON:      %s\n", cfg.Storage.JSONPath)

	if len(records) == 0 {
		fmt.Println("\n💡 No films were scraped. Check the index URL and your network connection.")
	}

	return nil
}

// serveCmd creates the "serve" subcommand.
func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser table over the JSON export",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return web.NewServer(cfg.Web.Port, cfg.Storage.JSONPath, logger).ListenAndServe()
		},
	}

	cmd.Flags().IntVarP(&webPort, "port", "p", 0, "listen port override")
	return cmd
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("filmboard %s\n", config.Version)
		},
	}
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Scraper:\n")
			fmt.Printf("  Index URL:        %s\n", cfg.Scraper.IndexURL)
			fmt.Printf("  Base URL:         %s\n", cfg.Scraper.BaseURL)
			fmt.Printf("  All Tables:       %v\n", cfg.Scraper.AllTables)
			fmt.Printf("  Request Timeout:  %s\n", cfg.Scraper.RequestTimeout)
			fmt.Printf("\nStorage:\n")
			fmt.Printf("  Database Path:    %s\n", cfg.Storage.DatabasePath)
			fmt.Printf("  JSON Path:        %s\n", cfg.Storage.JSONPath)
			fmt.Printf("  Mongo Mirror:     %v\n", cfg.Storage.Mongo.Enabled)
			fmt.Printf("\nWeb:\n")
			fmt.Printf("  Port:             %d\n", cfg.Web.Port)
			return nil
		},
	}
}

// loadConfig loads configuration and applies CLI flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if jsonPath != "" {
		cfg.Storage.JSONPath = jsonPath
	}
	if dbPath != "" {
		cfg.Storage.DatabasePath = dbPath
	}
	if cmd.Flags().Changed("all-tables") {
		cfg.Scraper.AllTables = allTables
	}
	if indexURL != "" {
		cfg.Scraper.IndexURL = indexURL
	}
	if webPort > 0 {
		cfg.Web.Port = webPort
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildStorage assembles the export sinks: SQLite and JSON always, MongoDB
// when enabled.
func buildStorage(cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	sqlite, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath, logger)
	if err != nil {
		return nil, fmt.Errorf("create sqlite storage: %w", err)
	}

	jsonStore, err := storage.NewJSONStorage(cfg.Storage.JSONPath, logger)
	if err != nil {
		sqlite.Close()
		return nil, fmt.Errorf("create json storage: %w", err)
	}

	backends := []storage.Storage{sqlite, jsonStore}

	if cfg.Storage.Mongo.Enabled {
		m := cfg.Storage.Mongo
		mongoStore, err := storage.NewMongoStorage(m.URI, m.Database, m.Collection, logger)
		if err != nil {
			sqlite.Close()
			return nil, fmt.Errorf("create mongo storage: %w", err)
		}
		backends = append(backends, mongoStore)
	}

	return storage.NewMultiStorage(backends, logger), nil
}

// setupLogger creates a structured logger.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}
