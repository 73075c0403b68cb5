package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logboxtesting "github.com/teranos/logbox/internal/testing"
	"github.com/teranos/logbox/logline"
)

func add(t *testing.T, a *Accumulator, raw string) {
	t.Helper()
	rec, err := logline.ParseRecord([]byte(raw))
	require.NoError(t, err)
	a.Add(rec)
}

func TestAccumulatorHistograms(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)

	add(t, a, `{"timestamp":"2019-07-23T12:00:00Z","severity":"ERROR","resource":{"type":"gce_instance"},"protoPayload":{"authenticationInfo":{"principalEmail":"eva@example.com"}}}`)
	add(t, a, `{"timestamp":"2019-07-23T12:01:00Z","severity":"ERROR","resource":{"type":"gce_instance"},"protoPayload":{"authenticationInfo":{"principalEmail":"omar@example.com"}}}`)
	add(t, a, `{"timestamp":"2019-07-23T12:02:00Z","severity":"INFO","resource":{"type":"cloud_function"}}`)

	rep := a.Report()
	assert.Equal(t, 3, rep.Records)
	assert.Equal(t, map[string]int{"gce_instance": 2, "cloud_function": 1}, rep.Resources)
	assert.Equal(t, map[string]int{"ERROR": 2, "INFO": 1}, rep.Severities)
	assert.Equal(t, map[string]int{"eva@example.com": 1, "omar@example.com": 1, "unknown": 1}, rep.Accounts)
}

func TestChronologyOverUnsortedInput(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)

	// Deliberately out of order
	add(t, a, `{"timestamp":"2019-07-23T12:00:00Z"}`)
	add(t, a, `{"timestamp":"2019-07-23T09:00:00Z"}`)
	add(t, a, `{"timestamp":"2019-07-23T15:00:00Z"}`)
	add(t, a, `{"timestamp":"2019-07-23T10:30:00Z"}`)

	rep := a.Report()
	assert.Equal(t, "2019-07-23T09:00:00Z", rep.Earliest)
	assert.Equal(t, "2019-07-23T15:00:00Z", rep.Latest)
}

func TestMissingTimestampCounted(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)

	add(t, a, `{"timestamp":"2019-07-23T12:00:00Z"}`)
	add(t, a, `{"severity":"INFO"}`)
	add(t, a, `{"timestamp":"not an instant"}`)

	rep := a.Report()
	assert.Equal(t, 3, rep.Records)
	assert.Equal(t, 2, rep.MissingTimestamp)
	assert.Equal(t, "2019-07-23T12:00:00Z", rep.Earliest)
}

func TestNoTimestampsLeavesChronologyEmpty(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)

	add(t, a, `{"severity":"INFO"}`)

	rep := a.Report()
	assert.Empty(t, rep.Earliest)
	assert.Empty(t, rep.Latest)
}

func TestNullIsNotUnknown(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)

	add(t, a, `{"severity":null}`)
	add(t, a, `{}`)

	rep := a.Report()
	assert.Equal(t, map[string]int{"null": 1, "unknown": 1}, rep.Severities)
}

func TestCollectCountsParseFailures(t *testing.T) {
	dir := t.TempDir()
	lines := []string{
		`{"timestamp":"2019-07-23T12:00:00Z","severity":"INFO"}`,
		`{"timestamp":"2019-07-23T12:01:00Z","severity":"INFO"}`,
		`{"timestamp":"2019-07-23T12:02:00Z","severity":"INFO"}`,
		`{"timestamp":"2019-07-23T12:03:00Z","severity":"INFO"}`,
		`{"broken`,
		`{"timestamp":"2019-07-23T12:05:00Z","severity":"INFO"}`,
		`{"timestamp":"2019-07-23T12:06:00Z","severity":"INFO"}`,
		`{"timestamp":"2019-07-23T12:07:00Z","severity":"INFO"}`,
		`{"timestamp":"2019-07-23T12:08:00Z","severity":"INFO"}`,
		`{"timestamp":"2019-07-23T12:09:00Z","severity":"INFO"}`,
	}
	path := logboxtesting.WriteJSONL(t, dir, "damaged.json", lines...)

	r, err := logline.NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	a, err := New(Options{})
	require.NoError(t, err)
	require.NoError(t, a.Collect(r))

	rep := a.Report()
	assert.Equal(t, 9, rep.Records, "every parseable record is processed")
	assert.Equal(t, 1, rep.ParseFailures)
}

func TestCustomFields(t *testing.T) {
	a, err := New(Options{
		TimestampField: "receiveTimestamp",
		SeverityField:  "level",
		AccountField:   "actor.email",
	})
	require.NoError(t, err)

	add(t, a, `{"receiveTimestamp":"2019-07-23T12:00:00Z","level":"warn","actor":{"email":"ana@example.com"}}`)

	rep := a.Report()
	assert.Equal(t, map[string]int{"warn": 1}, rep.Severities)
	assert.Equal(t, map[string]int{"ana@example.com": 1}, rep.Accounts)
	assert.Equal(t, "2019-07-23T12:00:00Z", rep.Earliest)
}

func TestNewRejectsBadFieldPath(t *testing.T) {
	_, err := New(Options{SeverityField: "a..b"})
	require.Error(t, err)
}

func TestBucketsSorted(t *testing.T) {
	rows := Buckets(map[string]int{
		"gce_instance":   7,
		"cloud_function": 12,
		"gae_app":        7,
	})
	assert.Equal(t, []Bucket{
		{Name: "cloud_function", Count: 12},
		{Name: "gae_app", Count: 7},
		{Name: "gce_instance", Count: 7},
	}, rows)
}
