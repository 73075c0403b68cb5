// Package window selects records by time. A Window is a closed interval;
// timeslice builds one around a center instant, timeframe takes both
// endpoints spelled out.
package window

import (
	"strings"
	"time"

	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/logline"
)

// DefaultSliceMinutes is how far a timeslice reaches in each direction
// when no size is given.
const DefaultSliceMinutes = 5

// timeLayouts are tried in order. Naive forms carry no zone and are read
// as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime reads one instant in any accepted layout.
func ParseTime(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.WithHint(
		errors.NewInvalidExpressionError("cannot read instant %q", raw),
		"try 2019-07-23T12:00:00Z, 2019-07-23 12:00:00 or 2019-07-23")
}

// Window is a closed interval of time. Both endpoints are inside.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, endpoints included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w Window) String() string {
	return w.Start.Format(time.RFC3339) + " .. " + w.End.Format(time.RFC3339)
}

// Slice builds the window centered on center, reaching size in each
// direction.
func Slice(center time.Time, size time.Duration) Window {
	return Window{Start: center.Add(-size), End: center.Add(size)}
}

// ParseFrame reads a timeframe expression of the form "start > end".
// A frame that starts after it ends is an invalid expression; the check
// happens here, before any input is touched.
func ParseFrame(raw string) (Window, error) {
	startRaw, endRaw, ok := strings.Cut(raw, ">")
	if !ok {
		return Window{}, errors.WithHint(
			errors.NewInvalidExpressionError("timeframe %q has no '>'", raw),
			`timeframes look like "2019-07-23 10:00:00 > 2019-07-23 12:00:00"`)
	}

	start, err := ParseTime(strings.TrimSpace(startRaw))
	if err != nil {
		return Window{}, errors.Wrap(err, "timeframe start")
	}
	end, err := ParseTime(strings.TrimSpace(endRaw))
	if err != nil {
		return Window{}, errors.Wrap(err, "timeframe end")
	}
	if start.After(end) {
		return Window{}, errors.NewInvalidExpressionError(
			"timeframe starts at %s, after it ends at %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return Window{Start: start, End: end}, nil
}

// Extractor pulls the instant out of a record by field path.
type Extractor struct {
	path logline.FieldPath
}

// NewExtractor builds an extractor for the given dotted field path.
func NewExtractor(field string) (*Extractor, error) {
	path, err := logline.ParsePath(field)
	if err != nil {
		return nil, errors.Wrap(err, "timestamp field")
	}
	return &Extractor{path: path}, nil
}

// Field returns the dotted path the extractor reads.
func (e *Extractor) Field() string {
	return e.path.String()
}

// Time reads the record's instant. The second return is false when the
// field is absent or its value does not read as an instant; such records
// are recoverable and callers count and skip them.
func (e *Extractor) Time(rec *logline.Record) (time.Time, bool) {
	v, found := rec.Lookup(e.path)
	if !found {
		return time.Time{}, false
	}
	t, err := ParseTime(logline.Text(v))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
