package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taxamatch/taxamatch/internal/config"
	"github.com/taxamatch/taxamatch/internal/pgoracle"
)

func main() {
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "taxamatch",
		Short: "Fuzzy genus-name matching",
		Long:  `A fuzzy matching system for biological genus names: exact, trigram, Damerau-Levenshtein, and phonetic lookups against a lexicon.`,
	}

	rootCmd.AddCommand(createMatchCmd())
	rootCmd.AddCommand(createNeighborhoodCmd())
	rootCmd.AddCommand(createPingCmd())
	rootCmd.AddCommand(createServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createPingCmd creates a command to test database connectivity.
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := pgoracle.OpenFromEnv()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()
			fmt.Println("Database connection successful!")
		},
	}
}
