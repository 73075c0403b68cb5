package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/logbox/logger"
	"github.com/teranos/logbox/logline"
	"github.com/teranos/logbox/sym"
)

// MergeCmd represents the merge command
var MergeCmd = &cobra.Command{
	Use:   "merge",
	Short: sym.Merge + " Concatenate export shards into one stream",
	Long: sym.Merge + ` merge — Concatenate export shards into one stream

Reads every input in the order given and writes all their lines to one
output. Records pass through byte-for-byte; lines that do not parse are
counted and passed through too, so a merge never loses data.

Examples:
  logbox merge -f 'shards/*.json' -o day.json
  logbox merge -f exports/ --recurse -o all.json
  logbox merge -f a.json -f b.json -o -`,
	RunE: runMerge,
}

var (
	mergeInputs  []string
	mergeOutput  string
	mergeRecurse bool
)

func init() {
	MergeCmd.Flags().StringSliceVarP(&mergeInputs, "file", "f", nil, "Input file, directory or glob (repeatable)")
	MergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Output file ('-' for stdout)")
	MergeCmd.Flags().BoolVar(&mergeRecurse, "recurse", false, "Search directories for export files")
	MergeCmd.MarkFlagRequired("file")
	MergeCmd.MarkFlagRequired("output")
}

func runMerge(cmd *cobra.Command, args []string) error {
	files, err := expandInputs(mergeInputs, mergeRecurse)
	if err != nil {
		return err
	}

	result, err := runPipe(&logline.Pipe{CopyFailures: true, OnFailure: logFailure}, files, mergeOutput)
	if err != nil {
		return err
	}

	logger.Infow("merge complete",
		logger.FieldComponent, "merge",
		logger.FieldCount, len(files),
		logger.FieldWritten, result.Written,
		logger.FieldFailures, result.Failures,
		logger.FieldOutput, mergeOutput)
	summarize(mergeOutput, fmt.Sprintf("Merged %d files, %d lines (%d unparseable) into %s",
		len(files), result.Written, result.Failures, mergeOutput))
	return nil
}
