package main

import (
	"github.com/spf13/cobra"

	"github.com/taoshops/shopdex/internal/api"
	"github.com/taoshops/shopdex/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "shopdex",
	Short: "Partner-shop directory extraction from the employee-card PDF",
	Long: `Shopdex parses the Taoyuan employee-card partner-shop PDF into
structured shop records and serves them for browsing and search.

The pipeline reconstructs table rows from positioned text fragments,
classifies lines, splits each row into typed fields (id, category, name,
phone, county, district, address, offer), and merges wrapped offer text.
Parsed records are cached with a time-to-live so repeated loads skip the
PDF entirely.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.shopdex/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "shopdex home directory (default: ~/.shopdex)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
