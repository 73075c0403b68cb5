package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/logbox/cmd/logbox/commands"
	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/logger"
)

var rootCmd = &cobra.Command{
	Use:   "logbox",
	Short: "logbox - Streaming toolbox for line-delimited JSON log exports",
	Long: `logbox - Streaming toolbox for line-delimited JSON log exports.

logbox reads newline-delimited JSON records from export files (plain,
gzip, or zstd), applies one operation per invocation, and writes matching
records byte-for-byte unchanged. Operations chain through files or pipes;
"-" means stdin or stdout.

Available commands:
  merge     - Concatenate export files in argument order
  filter    - Keep or drop records by field constraints
  timeslice - Keep records inside a window around a center instant
  timeframe - Keep records between an explicit start and end
  stats     - Count records by resource, severity, and account
  normalize - Unwrap a JSON array document into one record per line
  fetch     - Download export objects from a bucket
  config    - Manage logbox configuration

Examples:
  logbox merge -f 'exports/*.json' -o day.json
  logbox filter include severity=ERROR -f day.json -o errors.json
  logbox timeslice 2019-07-23T12:00:00Z --size 5 -f day.json -o noon.json
  logbox stats -f day.json --format table`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logJSON, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(verbosity, logJSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON on stderr")
	rootCmd.PersistentFlags().Bool("yes", false, "Answer yes to confirmation prompts")

	// Add commands
	rootCmd.AddCommand(commands.MergeCmd)
	rootCmd.AddCommand(commands.FilterCmd)
	rootCmd.AddCommand(commands.TimesliceCmd)
	rootCmd.AddCommand(commands.TimeframeCmd)
	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.NormalizeCmd)
	rootCmd.AddCommand(commands.FetchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hints)
		}
		os.Exit(1)
	}
}
