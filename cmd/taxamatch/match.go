package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taxamatch/taxamatch"
	"github.com/taxamatch/taxamatch/internal/memoracle"
	"github.com/taxamatch/taxamatch/internal/pgoracle"
)

// createMatchCmd creates the match subcommand: run any matcher variant
// against either a Postgres-backed lexicon or a flat text lexicon file.
func createMatchCmd() *cobra.Command {
	var tag string
	var table string
	var column string
	var cutoff float64
	var lowerLen int
	var upperLen int
	var k int
	var lexiconFile string

	cmd := &cobra.Command{
		Use:   "match [query]",
		Short: "Run a fuzzy matcher against the lexicon",
		Long:  `Run one of the matcher variants (exact, qgram, neighbor, wcneighbor, soundex, dmetaphone, hybrid) against a genus-name lexicon.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			query := args[0]

			oracle, closeFn, err := resolveOracle(lexiconFile, table, column)
			if err != nil {
				log.Fatalf("Failed to resolve lexicon: %v", err)
			}
			defer closeFn()

			cfg := taxamatch.Config{
				Oracle:   oracle,
				Table:    table,
				Column:   column,
				QCutoff:  cutoff,
				LowerLen: lowerLen,
				UpperLen: upperLen,
				K:        k,
			}

			m, err := taxamatch.New(taxamatch.Tag(tag), cfg)
			if err != nil {
				log.Fatalf("Failed to construct matcher %q: %v", tag, err)
			}

			results, err := m.Match(query)
			if err != nil {
				log.Fatalf("Match failed: %v", err)
			}

			if len(results) == 0 {
				fmt.Println("(no matches)")
				return
			}
			for _, name := range results {
				fmt.Println(name)
			}
		},
	}

	cmd.Flags().StringVar(&tag, "tag", string(taxamatch.TagHybrid), "matcher variant: exact, qgram, neighbor, wcneighbor, soundex, dmetaphone, hybrid")
	cmd.Flags().StringVar(&table, "table", "genus", "lexicon table name (Postgres mode)")
	cmd.Flags().StringVar(&column, "column", "name", "lexicon column name (Postgres mode)")
	cmd.Flags().Float64Var(&cutoff, "cutoff", taxamatch.DefaultQCutoff, "q-gram similarity cutoff")
	cmd.Flags().IntVar(&lowerLen, "lower-len", taxamatch.DefaultLowerLen, "hybrid matcher's lower length gate")
	cmd.Flags().IntVar(&upperLen, "upper-len", taxamatch.DefaultUpperLen, "hybrid matcher's upper length gate")
	cmd.Flags().IntVar(&k, "k", taxamatch.DefaultK, "Damerau-Levenshtein distance for neighbor/wcneighbor")
	cmd.Flags().StringVar(&lexiconFile, "lexicon", "", "path to a newline-delimited lexicon file; when set, runs against an in-memory oracle instead of Postgres")

	return cmd
}

// resolveOracle picks an in-memory oracle over lexiconFile when set,
// otherwise opens the shared Postgres connection.
func resolveOracle(lexiconFile, table, column string) (taxamatch.Oracle, func(), error) {
	if lexiconFile != "" {
		names, err := readLexicon(lexiconFile)
		if err != nil {
			return nil, nil, err
		}
		return memoracle.New(names), func() {}, nil
	}

	conn, err := pgoracle.OpenFromEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	oracle, err := pgoracle.New(conn, table, column)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("construct oracle: %w", err)
	}

	return oracle, func() { conn.Close() }, nil
}

func readLexicon(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon file: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	return names, nil
}
