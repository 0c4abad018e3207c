/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fedefreue/developers-agent-toolkit/internal/request"
	"github.com/fedefreue/developers-agent-toolkit/internal/runner"
	"github.com/fedefreue/developers-agent-toolkit/internal/spec"
)

var (
	runServerURL string
	runVerbose   bool

	green = color.New(color.FgGreen, color.Bold).SprintFunc()
	red   = color.New(color.FgRed, color.Bold).SprintFunc()
	white = color.New(color.FgWhite, color.Bold).SprintFunc()
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [spec-id] [method] [path]",
	Short: "Execute a synthesized example request",
	Long: `Assemble an example request for an operation and execute it.

The same synthesized request that "example" prints is sent to the
operation's server (or the --server override) and the response status,
latency and body excerpt are reported.

Examples:
  dat run payments-api GET /payments/{paymentId}
  dat run payments-api POST /payments --server http://localhost:3000 -v`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		specID, method, path := args[0], args[1], args[2]

		src, err := newSource()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating lookup source: %v\n", err)
			os.Exit(1)
		}

		payload, err := fetchWithSpinner("fetching operation", func() ([]byte, error) {
			return src.Operation(cmd.Context(), specID, method, path)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching operation: %v\n", err)
			os.Exit(1)
		}

		doc, err := spec.ParseDocument(payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if runServerURL != "" {
			doc.Servers = []spec.Server{{URL: runServerURL}}
		}

		req := request.Assemble(doc, method, path)
		if runVerbose {
			curl, err := req.Curl()
			if err == nil {
				fmt.Printf("%s %s\n", white("Request:"), curl)
			}
		}

		result, err := runner.New(viper.GetDuration("request.timeout")).Do(cmd.Context(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error executing request: %v\n", err)
			os.Exit(1)
		}

		status := green("OK")
		if result.StatusCode >= 400 {
			status = red("FAIL")
		}
		fmt.Printf("%s %s %s\n", status, req.Method, req.URL)
		fmt.Printf("  Status Code: %d\n", result.StatusCode)
		fmt.Printf("  Response Time: %v\n", result.ResponseTime)
		if runVerbose && len(result.Body) > 0 {
			excerpt := result.Body
			if len(excerpt) > 2048 {
				excerpt = excerpt[:2048]
			}
			fmt.Printf("  Body: %s\n", excerpt)
		}

		if result.StatusCode >= 400 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runServerURL, "server", "", "Override the server base URL from the operation document")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Show the assembled request and a response body excerpt")
}
