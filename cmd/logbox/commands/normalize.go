package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/logger"
	"github.com/teranos/logbox/logline"
	"github.com/teranos/logbox/sym"
)

// NormalizeCmd represents the normalize command
var NormalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: sym.Normalize + " Unwrap a JSON array into record lines",
	Long: sym.Normalize + ` normalize — Unwrap a JSON array into record lines

Some export tools wrap a capture in one big JSON array instead of
emitting line-delimited records. This reads such a document whole and
writes every element as its own line, ready for the other commands.

Examples:
  logbox normalize -f capture.json -o capture.jsonl
  logbox normalize -f capture.json -o -`,
	RunE: runNormalize,
}

var (
	normalizeInput  string
	normalizeOutput string
)

func init() {
	NormalizeCmd.Flags().StringVarP(&normalizeInput, "file", "f", "", "Input array document ('-' for stdin)")
	NormalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "Output file ('-' for stdout)")
	NormalizeCmd.MarkFlagRequired("file")
	NormalizeCmd.MarkFlagRequired("output")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	src := os.Stdin
	if normalizeInput != "-" {
		f, err := os.Open(normalizeInput)
		if err != nil {
			return errors.Wrapf(err, "opening %s", normalizeInput)
		}
		defer f.Close()
		src = f
	}

	w, err := logline.NewWriter(normalizeOutput)
	if err != nil {
		return err
	}

	n, err := logline.NormalizeArray(src, w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.Infow("normalize complete",
		logger.FieldComponent, "normalize",
		logger.FieldFile, normalizeInput,
		logger.FieldWritten, n,
		logger.FieldOutput, normalizeOutput)
	summarize(normalizeOutput, fmt.Sprintf("Unwrapped %d records into %s", n, normalizeOutput))
	return nil
}
