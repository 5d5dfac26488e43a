package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/taxamatch/taxamatch"
)

// createNeighborhoodCmd exposes the neighborhood generator directly,
// without an oracle, for inspecting what a matcher variant would search.
func createNeighborhoodCmd() *cobra.Command {
	var mode string
	var k int

	cmd := &cobra.Command{
		Use:   "neighborhood [query]",
		Short: "Print the candidate neighborhood for a query",
		Long:  `Generate and print the Damerau-Levenshtein neighborhood of a query string in full, wildcard, or partial-wildcard form.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			query := args[0]
			alphabet := taxamatch.DefaultAlphabet

			switch mode {
			case "full":
				nhood, err := taxamatch.GenerateFull(query, k, alphabet, 0)
				if err != nil {
					log.Fatalf("GenerateFull failed: %v", err)
				}
				for _, s := range nhood {
					fmt.Println(s)
				}
			case "wildcard":
				exact, wildcard, err := taxamatch.GenerateK1Wildcard(query, alphabet)
				if err != nil {
					log.Fatalf("GenerateK1Wildcard failed: %v", err)
				}
				printExactWildcard(exact, wildcard)
			case "partial":
				exact, wildcard, err := taxamatch.GenerateK1PartialWildcard(query, alphabet)
				if err != nil {
					log.Fatalf("GenerateK1PartialWildcard failed: %v", err)
				}
				printExactWildcard(exact, wildcard)
			default:
				log.Fatalf("unknown mode %q: want full, wildcard, or partial", mode)
			}
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "full", "neighborhood form: full, wildcard, or partial")
	cmd.Flags().IntVar(&k, "k", 1, "Damerau-Levenshtein distance (full mode only)")

	return cmd
}

func printExactWildcard(exact, wildcard []string) {
	fmt.Println("exact:")
	for _, s := range exact {
		fmt.Println(" ", s)
	}
	fmt.Println("wildcard:")
	for _, s := range wildcard {
		fmt.Println(" ", s)
	}
}
