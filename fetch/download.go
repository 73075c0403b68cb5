package fetch

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/logger"
)

// Downloader mirrors the matching objects of a Store into a local
// directory, optionally paced to stay polite against shared quotas.
type Downloader struct {
	store   Store
	matcher *Matcher
	destDir string
	limiter *rate.Limiter
}

// Result tallies one run.
type Result struct {
	Listed     int   // objects in the bucket
	Matched    int   // objects matching the glob
	Downloaded int   // objects written locally
	Skipped    int   // objects that vanished between listing and open
	Bytes      int64 // payload bytes written
}

// NewDownloader builds a downloader. perMinute 0 means unpaced; anything
// above spreads the opens evenly, one at a time.
func NewDownloader(store Store, matcher *Matcher, destDir string, perMinute int) *Downloader {
	d := &Downloader{store: store, matcher: matcher, destDir: destDir}
	if perMinute > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1)
	}
	return d
}

// Run lists the bucket once and downloads every matching object. An
// object gone by the time it is opened is logged and skipped; the listing
// is a snapshot and exports rotate. Any other failure aborts the run.
func (d *Downloader) Run(ctx context.Context) (Result, error) {
	var result Result

	names, err := d.store.List(ctx)
	if err != nil {
		return result, err
	}
	result.Listed = len(names)

	for _, name := range names {
		if !d.matcher.Match(name) {
			continue
		}
		result.Matched++

		if d.limiter != nil {
			if err := d.limiter.Wait(ctx); err != nil {
				return result, errors.Wrap(err, "rate limit wait")
			}
		}

		n, err := d.fetchOne(ctx, name)
		if err != nil {
			if errors.IsNotFoundError(err) {
				result.Skipped++
				logger.Warnw("object vanished between listing and download",
					logger.FieldObject, name)
				continue
			}
			return result, err
		}
		result.Downloaded++
		result.Bytes += n
		logger.Debugw("downloaded object",
			logger.FieldObject, name,
			logger.FieldSize, n)
	}

	return result, nil
}

func (d *Downloader) fetchOne(ctx context.Context, name string) (int64, error) {
	src, err := d.store.Open(ctx, name)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst := MirrorPath(d.destDir, name)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, errors.Wrapf(err, "creating directory for %s", dst)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, errors.Wrapf(err, "creating %s", dst)
	}

	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return 0, errors.Wrapf(err, "downloading %s", name)
	}
	return n, nil
}
