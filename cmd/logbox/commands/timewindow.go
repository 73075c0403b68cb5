package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/logbox/config"
	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/logger"
	"github.com/teranos/logbox/logline"
	"github.com/teranos/logbox/sym"
	"github.com/teranos/logbox/window"
)

// TimesliceCmd represents the timeslice command
var TimesliceCmd = &cobra.Command{
	Use:   "timeslice <center>",
	Short: sym.Slice + " Keep records around an instant",
	Long: sym.Slice + ` timeslice — Keep records around an instant

Keeps every record whose timestamp falls within --size minutes of the
center, in both directions, endpoints included. Records without a
readable timestamp are dropped and counted.

Examples:
  logbox timeslice 2019-07-23T12:04:00Z -f day.json -o incident.json
  logbox timeslice "2019-07-23 12:04:00" --size 15 -f day.json -o wide.json
  logbox timeslice 2019-07-23T12:04:00Z --timestamp-field receiveTimestamp -f day.json -o -`,
	Args: cobra.ExactArgs(1),
	RunE: runTimeslice,
}

// TimeframeCmd represents the timeframe command
var TimeframeCmd = &cobra.Command{
	Use:   `timeframe "<start> > <end>"`,
	Short: sym.Frame + " Keep records between two instants",
	Long: sym.Frame + ` timeframe — Keep records between two instants

Keeps every record whose timestamp falls between the two instants,
endpoints included. A frame that starts after it ends is rejected before
any input is read.

Examples:
  logbox timeframe "2019-07-23 10:00:00 > 2019-07-23 12:00:00" -f day.json -o morning.json
  logbox timeframe "2019-07-22 > 2019-07-23" -f exports/ --recurse -o day.json`,
	Args: cobra.ExactArgs(1),
	RunE: runTimeframe,
}

var (
	timesliceInputs  []string
	timesliceOutput  string
	timesliceRecurse bool
	timesliceSize    int
	timesliceField   string

	timeframeInputs  []string
	timeframeOutput  string
	timeframeRecurse bool
	timeframeField   string
)

func init() {
	TimesliceCmd.Flags().StringSliceVarP(&timesliceInputs, "file", "f", nil, "Input file, directory or glob (repeatable)")
	TimesliceCmd.Flags().StringVarP(&timesliceOutput, "output", "o", "", "Output file ('-' for stdout)")
	TimesliceCmd.Flags().BoolVar(&timesliceRecurse, "recurse", false, "Search directories for export files")
	TimesliceCmd.Flags().IntVar(&timesliceSize, "size", window.DefaultSliceMinutes, "Minutes to keep on each side of the center")
	TimesliceCmd.Flags().StringVar(&timesliceField, "timestamp-field", "", "Timestamp field path (default from config)")
	TimesliceCmd.MarkFlagRequired("file")
	TimesliceCmd.MarkFlagRequired("output")

	TimeframeCmd.Flags().StringSliceVarP(&timeframeInputs, "file", "f", nil, "Input file, directory or glob (repeatable)")
	TimeframeCmd.Flags().StringVarP(&timeframeOutput, "output", "o", "", "Output file ('-' for stdout)")
	TimeframeCmd.Flags().BoolVar(&timeframeRecurse, "recurse", false, "Search directories for export files")
	TimeframeCmd.Flags().StringVar(&timeframeField, "timestamp-field", "", "Timestamp field path (default from config)")
	TimeframeCmd.MarkFlagRequired("file")
	TimeframeCmd.MarkFlagRequired("output")
}

func runTimeslice(cmd *cobra.Command, args []string) error {
	center, err := window.ParseTime(args[0])
	if err != nil {
		return err
	}
	if timesliceSize < 0 {
		return errors.Newf("--size must be >= 0, got %d", timesliceSize)
	}
	win := window.Slice(center, time.Duration(timesliceSize)*time.Minute)
	return runWindow(win, timesliceInputs, timesliceOutput, timesliceField, timesliceRecurse)
}

func runTimeframe(cmd *cobra.Command, args []string) error {
	win, err := window.ParseFrame(args[0])
	if err != nil {
		return err
	}
	return runWindow(win, timeframeInputs, timeframeOutput, timeframeField, timeframeRecurse)
}

func runWindow(win window.Window, inputs []string, out, field string, recurse bool) error {
	if field == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		field = cfg.GetTimestampField()
	}
	ex, err := window.NewExtractor(field)
	if err != nil {
		return err
	}

	files, err := expandInputs(inputs, recurse)
	if err != nil {
		return err
	}

	var missing int
	p := &logline.Pipe{
		Keep: func(rec *logline.Record) bool {
			ts, ok := ex.Time(rec)
			if !ok {
				missing++
				return false
			}
			return win.Contains(ts)
		},
		OnFailure: logFailure,
	}
	result, err := runPipe(p, files, out)
	if err != nil {
		return err
	}

	logger.Infow("window complete",
		logger.FieldComponent, "window",
		"window", win.String(),
		"timestamp_field", ex.Field(),
		logger.FieldRecords, result.Read,
		logger.FieldWritten, result.Written,
		logger.FieldDropped, result.Dropped,
		logger.FieldFailures, result.Failures,
		"missing_timestamp", missing,
		logger.FieldOutput, out)
	summarize(out, fmt.Sprintf("Kept %d of %d records in %s into %s",
		result.Written, result.Read, win, out))
	return nil
}
