package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/logbox/config"
	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/fetch"
	"github.com/teranos/logbox/logger"
	"github.com/teranos/logbox/sym"
)

// FetchCmd represents the fetch command
var FetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: sym.Fetch + " Download export objects from a bucket",
	Long: sym.Fetch + ` fetch — Download export objects from a bucket

Lists the bucket once and mirrors every object matching the glob into the
destination directory, keeping the bucket's layout. Colons in object
names become dashes locally. Objects that vanish between the listing and
their download are logged and skipped; exports rotate.

Credentials come from --key, the LOGBOX_FETCH_CREDENTIALS_FILE
environment variable, or ambient cloud credentials, in that order.

Examples:
  logbox fetch -b audit-exports -o exports/
  logbox fetch -b audit-exports -m 'activity/2019-07-23*' -o exports/ --yes
  logbox fetch -b audit-exports -o exports/ --rpm 90 --key sa.json`,
	RunE: runFetch,
}

var (
	fetchBucket string
	fetchMatch  string
	fetchDest   string
	fetchKey    string
	fetchRPM    int
)

func init() {
	FetchCmd.Flags().StringVarP(&fetchBucket, "bucket", "b", "", "Bucket to download from (default from config)")
	FetchCmd.Flags().StringVarP(&fetchMatch, "match", "m", "", "Glob over object names ('*' crosses '/')")
	FetchCmd.Flags().StringVarP(&fetchDest, "output", "o", "", "Destination directory")
	FetchCmd.Flags().StringVar(&fetchKey, "key", "", "Service account key file (default from config)")
	FetchCmd.Flags().IntVar(&fetchRPM, "rpm", 0, "Max object downloads per minute, 0 = unpaced (default from config)")
	FetchCmd.MarkFlagRequired("output")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	bucket := fetchBucket
	if bucket == "" {
		bucket = cfg.Fetch.Bucket
	}
	if bucket == "" {
		return errors.WithHint(errors.New("no bucket given"),
			"pass -b or set fetch.bucket in the config")
	}

	key := fetchKey
	if key == "" {
		key = cfg.Fetch.CredentialsFile
	}

	rpm := fetchRPM
	if !cmd.Flags().Changed("rpm") {
		rpm = cfg.Fetch.MaxRequestsPerMinute
	}
	if rpm < 0 {
		return errors.Newf("--rpm must be >= 0, got %d", rpm)
	}

	if err := os.MkdirAll(fetchDest, config.DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "creating %s", fetchDest)
	}

	matcher := fetch.NewMatcher(fetchMatch)

	if yes, _ := cmd.Root().PersistentFlags().GetBool("yes"); !yes {
		prompt := fmt.Sprintf("Download objects matching %q from bucket %s into %s?",
			matcher, bucket, fetchDest)
		ok, _ := pterm.DefaultInteractiveConfirm.WithDefaultText(prompt).Show()
		if !ok {
			pterm.Info.Println("Fetch cancelled")
			return nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := fetch.NewGCSStore(ctx, bucket, key)
	if err != nil {
		return err
	}
	defer store.Close()

	// Create a spinner while the bucket is listed and mirrored (only in non-JSON mode)
	var spinner *pterm.SpinnerPrinter
	if !logger.JSONOutput {
		spinner, _ = pterm.DefaultSpinner.Start(fmt.Sprintf("Downloading from bucket %s...", bucket))
	}

	d := fetch.NewDownloader(store, matcher, fetchDest, rpm)
	result, err := d.Run(ctx)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	logger.Infow("fetch complete",
		logger.FieldComponent, "fetch",
		logger.FieldBucket, bucket,
		logger.FieldPattern, matcher.String(),
		"listed", result.Listed,
		"matched", result.Matched,
		"downloaded", result.Downloaded,
		"skipped", result.Skipped,
		logger.FieldSize, result.Bytes)
	pterm.Success.Printf("Downloaded %d of %d matching objects (%d skipped) into %s\n",
		result.Downloaded, result.Matched, result.Skipped, fetchDest)
	return nil
}
