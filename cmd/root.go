/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fedefreue/developers-agent-toolkit/internal/lookup"
)

const version = "0.1.0"

var (
	lookupURL string
	specFile  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dat",
	Short: "Developer toolkit for exploring API specifications",
	Long: `dat is a developer toolkit for working with API specifications.

It searches a specification's operations by free-text query and tag, and
synthesizes runnable example requests (as curl command lines) from an
operation's declared parameters and request-body schema.

Operation data comes from a remote lookup service by default; point
--spec-file at a local OpenAPI document to work offline.`,
	Version: version,
}

func Execute() {
	cobra.OnInitialize(initConfig)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.SetDefault("lookup.base_url", "http://localhost:8787")
	viper.SetDefault("lookup.timeout", "30s")
	viper.SetDefault("request.timeout", "30s")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Error reading config file: %v", err)
		}
	}
}

// newSource selects the operation lookup source: a local OpenAPI file
// when --spec-file is given, the remote lookup service otherwise.
func newSource() (lookup.Source, error) {
	if specFile != "" {
		return lookup.NewFileSource(specFile)
	}
	base := lookupURL
	if base == "" {
		base = viper.GetString("lookup.base_url")
	}
	return lookup.NewClient(base, viper.GetDuration("lookup.timeout")), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lookupURL, "lookup-url", "", "Base URL of the operation lookup service (overrides config)")
	rootCmd.PersistentFlags().StringVar(&specFile, "spec-file", "", "Read operations from a local OpenAPI file instead of the lookup service")
}
