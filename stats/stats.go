// Package stats tallies a record stream in one pass: record and failure
// counts, the chronology endpoints, and histograms over a few fields of
// interest. Input order never matters.
package stats

import (
	"sort"
	"time"

	"github.com/teranos/logbox/config"
	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/logline"
	"github.com/teranos/logbox/window"
)

// UnknownBucket is where records missing a histogram field land. A field
// holding JSON null is present and lands in the "null" bucket instead.
const UnknownBucket = "unknown"

// Options name the fields to tally. Empty fields fall back to the
// platform defaults.
type Options struct {
	TimestampField string
	ResourceField  string
	SeverityField  string
	AccountField   string
}

// Accumulator gathers one pass of counts. It is not safe for concurrent
// use; a stream is consumed by exactly one goroutine.
type Accumulator struct {
	extractor *window.Extractor
	resource  logline.FieldPath
	severity  logline.FieldPath
	account   logline.FieldPath

	records    int
	failures   int
	missingTS  int
	earliest   time.Time
	latest     time.Time
	resources  map[string]int
	severities map[string]int
	accounts   map[string]int
}

// New builds an accumulator for the given fields.
func New(opts Options) (*Accumulator, error) {
	if opts.TimestampField == "" {
		opts.TimestampField = config.DefaultTimestampField
	}
	if opts.ResourceField == "" {
		opts.ResourceField = config.DefaultResourceField
	}
	if opts.SeverityField == "" {
		opts.SeverityField = config.DefaultSeverityField
	}
	if opts.AccountField == "" {
		opts.AccountField = config.DefaultAccountField
	}

	extractor, err := window.NewExtractor(opts.TimestampField)
	if err != nil {
		return nil, err
	}
	resource, err := logline.ParsePath(opts.ResourceField)
	if err != nil {
		return nil, errors.Wrap(err, "resource field")
	}
	severity, err := logline.ParsePath(opts.SeverityField)
	if err != nil {
		return nil, errors.Wrap(err, "severity field")
	}
	account, err := logline.ParsePath(opts.AccountField)
	if err != nil {
		return nil, errors.Wrap(err, "account field")
	}

	return &Accumulator{
		extractor:  extractor,
		resource:   resource,
		severity:   severity,
		account:    account,
		resources:  make(map[string]int),
		severities: make(map[string]int),
		accounts:   make(map[string]int),
	}, nil
}

// Add tallies one record.
func (a *Accumulator) Add(rec *logline.Record) {
	a.records++

	if t, ok := a.extractor.Time(rec); ok {
		if a.earliest.IsZero() || t.Before(a.earliest) {
			a.earliest = t
		}
		if a.latest.IsZero() || t.After(a.latest) {
			a.latest = t
		}
	} else {
		a.missingTS++
	}

	a.resources[bucketOf(rec, a.resource)]++
	a.severities[bucketOf(rec, a.severity)]++
	a.accounts[bucketOf(rec, a.account)]++
}

// AddFailure tallies one line that did not parse.
func (a *Accumulator) AddFailure() {
	a.failures++
}

// Collect drains the reader into the accumulator. Parse failures are
// counted and do not stop the pass.
func (a *Accumulator) Collect(r *logline.Reader) error {
	for r.Next() {
		line := r.Line()
		if line.Err != nil {
			a.AddFailure()
			continue
		}
		a.Add(line.Record)
	}
	return r.Err()
}

// Report returns the finished tally.
func (a *Accumulator) Report() *Report {
	rep := &Report{
		Records:          a.records,
		ParseFailures:    a.failures,
		MissingTimestamp: a.missingTS,
		Resources:        a.resources,
		Severities:       a.severities,
		Accounts:         a.accounts,
	}
	if !a.earliest.IsZero() {
		rep.Earliest = a.earliest.Format(time.RFC3339Nano)
		rep.Latest = a.latest.Format(time.RFC3339Nano)
	}
	return rep
}

func bucketOf(rec *logline.Record, path logline.FieldPath) string {
	v, found := rec.Lookup(path)
	if !found {
		return UnknownBucket
	}
	return logline.Text(v)
}

// Report is the finished tally of one pass.
type Report struct {
	Records          int            `json:"records" yaml:"records"`
	ParseFailures    int            `json:"parse_failures" yaml:"parse_failures"`
	MissingTimestamp int            `json:"missing_timestamp" yaml:"missing_timestamp"`
	Earliest         string         `json:"earliest,omitempty" yaml:"earliest,omitempty"`
	Latest           string         `json:"latest,omitempty" yaml:"latest,omitempty"`
	Resources        map[string]int `json:"resources" yaml:"resources"`
	Severities       map[string]int `json:"severities" yaml:"severities"`
	Accounts         map[string]int `json:"accounts" yaml:"accounts"`
}

// Bucket is one histogram row.
type Bucket struct {
	Name  string
	Count int
}

// Buckets flattens a histogram into rows sorted by count, largest first,
// ties broken by name.
func Buckets(m map[string]int) []Bucket {
	out := make([]Bucket, 0, len(m))
	for name, count := range m {
		out = append(out, Bucket{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
