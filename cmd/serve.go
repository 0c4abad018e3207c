/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/fedefreue/developers-agent-toolkit/internal/mcpserver"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the toolkit as an MCP server over stdio",
	Long: `Serve the toolkit's capabilities as MCP tools over stdio.

Two tools are exposed: search-api-operations and
generate-request-example. Wire this command into an MCP client (for
example a coding agent) as a stdio server.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		src, err := newSource()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating lookup source: %v\n", err)
			os.Exit(1)
		}

		if err := server.ServeStdio(mcpserver.New(src, version)); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
