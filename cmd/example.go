/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fedefreue/developers-agent-toolkit/internal/output"
	"github.com/fedefreue/developers-agent-toolkit/internal/request"
	"github.com/fedefreue/developers-agent-toolkit/internal/spec"
)

var (
	exampleServerURL    string
	exampleOutputFormat string
	exampleOutputFile   string
)

// exampleCmd represents the example command
var exampleCmd = &cobra.Command{
	Use:   "example [spec-id] [method] [path]",
	Short: "Generate an example request for an operation",
	Long: `Generate a runnable example request for one operation.

The operation's parameters and request-body schema are walked to derive
plausible example values, which are substituted into the URL template and
rendered as a curl command line.

Examples:
  # Example request for an operation served by the lookup service
  dat example payments-api POST /payments/{paymentId}

  # Same, against a local OpenAPI file
  dat example payments-api POST /payments/{paymentId} --spec-file openapi.json

  # Export the request representation as JSON
  dat example payments-api POST /payments/{paymentId} -o json --output-file request.json`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		specID, method, path := args[0], args[1], args[2]

		format, err := output.ParseFormat(exampleOutputFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

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
		if exampleServerURL != "" {
			doc.Servers = []spec.Server{{URL: exampleServerURL}}
		}

		req := request.Assemble(doc, method, path)
		if err := output.ExportRequest(req, format, exampleOutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().StringVar(&exampleServerURL, "server", "", "Override the server base URL from the operation document")
	exampleCmd.Flags().StringVarP(&exampleOutputFormat, "output", "o", "text", "Output format: text (curl) or json")
	exampleCmd.Flags().StringVar(&exampleOutputFile, "output-file", "", "Write output to a file instead of stdout")
}
