package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/logline"
)

func record(t *testing.T, raw string) *logline.Record {
	t.Helper()
	rec, err := logline.ParseRecord([]byte(raw))
	require.NoError(t, err)
	return rec
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int // constraint count
		wantErr bool
	}{
		{name: "single constraint", raw: "severity=ERROR", want: 1},
		{name: "multiple constraints", raw: "severity=ERROR,resource.type=gce_instance", want: 2},
		{name: "nested path", raw: "protoPayload.methodName=v1.compute.instances.delete", want: 1},
		{name: "value may contain '='", raw: "httpRequest.requestUrl=/search?q=a=b", want: 1},
		{name: "empty value", raw: "textPayload=", want: 1},
		{name: "spaces around segments", raw: "severity=ERROR, resource.type=gae_app", want: 2},
		{name: "empty expression", raw: "", wantErr: true},
		{name: "blank expression", raw: "   ", wantErr: true},
		{name: "missing '='", raw: "severity", wantErr: true},
		{name: "empty constraint between commas", raw: "a=1,,b=2", wantErr: true},
		{name: "bad field path", raw: "resource..type=gce_instance", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(Include, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidExpressionError(err), "expected invalid expression, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, expr.Constraints, tt.want)
		})
	}
}

func TestParseValueRunsToEndOfSegment(t *testing.T) {
	expr, err := Parse(Include, "httpRequest.requestUrl=/search?q=a=b")
	require.NoError(t, err)
	assert.Equal(t, "/search?q=a=b", expr.Constraints[0].Value)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("include")
	require.NoError(t, err)
	assert.Equal(t, Include, mode)

	mode, err = ParseMode("exclude")
	require.NoError(t, err)
	assert.Equal(t, Exclude, mode)

	_, err = ParseMode("reject")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidExpressionError(err))
}

func TestIncludeRequiresEveryConstraint(t *testing.T) {
	expr, err := Parse(Include, "severity=ERROR,resource.type=gce_instance")
	require.NoError(t, err)

	tests := []struct {
		name string
		rec  string
		keep bool
	}{
		{
			name: "both match",
			rec:  `{"severity":"ERROR","resource":{"type":"gce_instance"}}`,
			keep: true,
		},
		{
			name: "only severity matches",
			rec:  `{"severity":"ERROR","resource":{"type":"cloud_function"}}`,
			keep: false,
		},
		{
			name: "only resource matches",
			rec:  `{"severity":"INFO","resource":{"type":"gce_instance"}}`,
			keep: false,
		},
		{
			name: "neither matches",
			rec:  `{"severity":"INFO","resource":{"type":"cloud_function"}}`,
			keep: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keep, expr.Keep(record(t, tt.rec)))
		})
	}
}

func TestExcludeDropsOnlyFullMatches(t *testing.T) {
	expr, err := Parse(Exclude, "severity=INFO,resource.type=gce_instance")
	require.NoError(t, err)

	tests := []struct {
		name string
		rec  string
		keep bool
	}{
		{
			name: "full match is dropped",
			rec:  `{"severity":"INFO","resource":{"type":"gce_instance"}}`,
			keep: false,
		},
		{
			name: "warning on the same resource survives",
			rec:  `{"severity":"WARNING","resource":{"type":"gce_instance"}}`,
			keep: true,
		},
		{
			name: "info on another resource survives",
			rec:  `{"severity":"INFO","resource":{"type":"cloud_function"}}`,
			keep: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keep, expr.Keep(record(t, tt.rec)))
		})
	}
}

func TestAbsentFieldNeverMatches(t *testing.T) {
	rec := record(t, `{"severity":"ERROR"}`)

	include, err := Parse(Include, "textPayload=boom")
	require.NoError(t, err)
	assert.False(t, include.Keep(rec), "include on an absent field keeps nothing")

	exclude, err := Parse(Exclude, "textPayload=boom")
	require.NoError(t, err)
	assert.True(t, exclude.Keep(rec), "exclude on an absent field drops nothing")
}

func TestTextualComparison(t *testing.T) {
	rec := record(t, `{"count":42,"ratio":1.0,"ok":true,"status":null,"label":"42"}`)

	tests := []struct {
		name  string
		raw   string
		match bool
	}{
		{name: "number by its text", raw: "count=42", match: true},
		{name: "number keeps written form", raw: "ratio=1.0", match: true},
		{name: "canonical float does not match written form", raw: "ratio=1", match: false},
		{name: "bool", raw: "ok=true", match: true},
		{name: "null matches the word null", raw: "status=null", match: true},
		{name: "string of digits reads the same as the number", raw: "label=42", match: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(Include, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.match, expr.Match(rec))
		})
	}
}

func TestExpressionString(t *testing.T) {
	expr, err := Parse(Exclude, "severity=INFO,resource.type=gae_app")
	require.NoError(t, err)
	assert.Equal(t, "exclude severity=INFO,resource.type=gae_app", expr.String())
}
