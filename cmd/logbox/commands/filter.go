package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/logbox/filter"
	"github.com/teranos/logbox/logger"
	"github.com/teranos/logbox/logline"
	"github.com/teranos/logbox/sym"
)

// FilterCmd represents the filter command
var FilterCmd = &cobra.Command{
	Use:   "filter <include|exclude> <field=value,...>",
	Short: sym.Filter + " Keep or drop records by field values",
	Long: sym.Filter + ` filter — Keep or drop records by field values

Matches records against a comma-separated list of field=value constraints.
A record matches only when every constraint holds; include keeps exactly
the matches, exclude drops exactly the matches. Fields are addressed with
dot notation and compared textually, so severity=ERROR and count=42 both
read naturally. Lines that do not parse are counted and dropped.

Examples:
  logbox filter include severity=ERROR -f day.json -o errors.json
  logbox filter exclude severity=INFO,resource.type=gae_app -f day.json -o quiet.json
  logbox filter include protoPayload.methodName=v1.compute.instances.delete -f day.json -o -`,
	Args: cobra.ExactArgs(2),
	RunE: runFilter,
}

var (
	filterInputs  []string
	filterOutput  string
	filterRecurse bool
)

func init() {
	FilterCmd.Flags().StringSliceVarP(&filterInputs, "file", "f", nil, "Input file, directory or glob (repeatable)")
	FilterCmd.Flags().StringVarP(&filterOutput, "output", "o", "", "Output file ('-' for stdout)")
	FilterCmd.Flags().BoolVar(&filterRecurse, "recurse", false, "Search directories for export files")
	FilterCmd.MarkFlagRequired("file")
	FilterCmd.MarkFlagRequired("output")
}

func runFilter(cmd *cobra.Command, args []string) error {
	mode, err := filter.ParseMode(args[0])
	if err != nil {
		return err
	}
	expr, err := filter.Parse(mode, args[1])
	if err != nil {
		return err
	}

	files, err := expandInputs(filterInputs, filterRecurse)
	if err != nil {
		return err
	}

	result, err := runPipe(&logline.Pipe{Keep: expr.Keep, OnFailure: logFailure}, files, filterOutput)
	if err != nil {
		return err
	}

	logger.Infow("filter complete",
		logger.FieldComponent, "filter",
		"expression", expr.String(),
		logger.FieldRecords, result.Read,
		logger.FieldWritten, result.Written,
		logger.FieldDropped, result.Dropped,
		logger.FieldFailures, result.Failures,
		logger.FieldOutput, filterOutput)
	summarize(filterOutput, fmt.Sprintf("Kept %d of %d records (%s) into %s",
		result.Written, result.Read, expr, filterOutput))
	return nil
}
