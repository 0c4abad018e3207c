/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fedefreue/developers-agent-toolkit/internal/output"
	"github.com/fedefreue/developers-agent-toolkit/internal/search"
)

var (
	searchTag        string
	searchOutputFile string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [spec-id] [query]",
	Short: "Search a specification's operations",
	Long: `Search a specification's operations by free-text query.

The query is matched case-insensitively against each operation's summary,
description and tags. With --tag, results are further restricted to
operations carrying exactly that tag. Matches are printed as a pretty
JSON array preserving every original field.

Examples:
  dat search payments-api payment
  dat search accounts-api account --tag Finance`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		specID, query := args[0], args[1]

		src, err := newSource()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating lookup source: %v\n", err)
			os.Exit(1)
		}

		payload, err := fetchWithSpinner("fetching operations", func() ([]byte, error) {
			return src.Operations(cmd.Context(), specID)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching operations: %v\n", err)
			os.Exit(1)
		}

		result := search.Render(payload, query, searchTag)
		if err := output.ExportSearch(result, searchOutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchTag, "tag", "", "Restrict results to operations carrying exactly this tag")
	searchCmd.Flags().StringVar(&searchOutputFile, "output-file", "", "Write output to a file instead of stdout")
}
