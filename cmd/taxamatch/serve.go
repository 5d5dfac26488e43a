package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/taxamatch/taxamatch/internal/config"
	"github.com/taxamatch/taxamatch/internal/web"
)

// createServeCmd starts the HTTP API over a Postgres-backed lexicon.
func createServeCmd() *cobra.Command {
	var configFile string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP matching API",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := web.DefaultConfig()
			if configFile != "" {
				loaded, err := web.LoadConfig(configFile)
				if err != nil {
					log.Fatalf("Failed to load config file %q: %v", configFile, err)
				}
				cfg = loaded
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			if url := config.GetEnv("TAXAMATCH_DATABASE_URL", ""); url != "" {
				cfg.Database.URL = url
			}

			server, err := web.NewServer(cfg)
			if err != nil {
				log.Fatalf("Failed to create server: %v", err)
			}
			if err := server.Start(); err != nil {
				log.Fatalf("Server error: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a JSON config file")
	cmd.Flags().IntVar(&port, "port", 0, "override the configured HTTP port")

	return cmd
}
