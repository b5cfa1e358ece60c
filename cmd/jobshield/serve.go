package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkale/jobshield/internal/config"
	"github.com/mkale/jobshield/internal/server"
)

var (
	serveAddr       string
	serveConfigPath string
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the scoring engine over REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Allow headless browser rendering for SPA portals")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = serveAddr
	}
	// DATABASE_URL is optional: without it the server scores statelessly.
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	engine, err := buildEngine(cfg.LexiconPath)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Addr:        cfg.ListenAddr,
		DatabaseURL: cfg.DatabaseURL,
		Engine:      engine,
		UseBrowser:  serveUseBrowser || cfg.UseBrowser,
		Verbose:     serveVerbose || cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
