package logline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logboxtesting "github.com/teranos/logbox/internal/testing"
)

func runPipe(t *testing.T, p *Pipe, outPath string, inputs ...string) PipeResult {
	t.Helper()

	r, err := NewReader(inputs...)
	require.NoError(t, err)
	defer r.Close()

	w, err := NewWriter(outPath)
	require.NoError(t, err)

	result, err := p.Run(r, w)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return result
}

func TestPipePassthroughIsLossless(t *testing.T) {
	dir := t.TempDir()
	// Deliberately uneven spacing; a pass-through must not reformat
	a := logboxtesting.WriteJSONL(t, dir, "a.json",
		`{"id": 1, "tags": [1,  2]}`,
		`{"id":2}`,
	)
	b := logboxtesting.WriteJSONL(t, dir, "b.json",
		`{"id":3 }`,
	)
	out := filepath.Join(dir, "out.json")

	result := runPipe(t, &Pipe{CopyFailures: true}, out, a, b)
	assert.Equal(t, 3, result.Read)
	assert.Equal(t, 3, result.Written)
	assert.Equal(t, 0, result.Dropped)
	assert.Equal(t, 0, result.Failures)

	aRaw, err := os.ReadFile(a)
	require.NoError(t, err)
	bRaw, err := os.ReadFile(b)
	require.NoError(t, err)
	outRaw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(aRaw)+string(bRaw), string(outRaw))
}

func TestPipeDropsByPredicate(t *testing.T) {
	dir := t.TempDir()
	in := logboxtesting.WriteJSONL(t, dir, "in.json",
		`{"severity":"ERROR","id":1}`,
		`{"severity":"INFO","id":2}`,
		`{"severity":"ERROR","id":3}`,
	)
	out := filepath.Join(dir, "out.json")

	severity := MustParsePath("severity")
	keepErrors := func(rec *Record) bool {
		v, found := rec.Lookup(severity)
		return found && Text(v) == "ERROR"
	}

	result := runPipe(t, &Pipe{Keep: keepErrors}, out, in)
	assert.Equal(t, 3, result.Read)
	assert.Equal(t, 2, result.Written)
	assert.Equal(t, 1, result.Dropped)

	lines := logboxtesting.ReadLines(t, out)
	assert.Equal(t, []string{`{"severity":"ERROR","id":1}`, `{"severity":"ERROR","id":3}`}, lines)
}

func TestPipeCountsAndSkipsFailures(t *testing.T) {
	dir := t.TempDir()
	in := logboxtesting.WriteJSONL(t, dir, "in.json",
		`{"id":1}`,
		`{"id":2,"broken`,
		`{"id":3}`,
	)
	out := filepath.Join(dir, "out.json")

	var reported []int
	p := &Pipe{
		OnFailure: func(line *Line) {
			reported = append(reported, line.Number)
		},
	}
	result := runPipe(t, p, out, in)
	assert.Equal(t, 3, result.Read)
	assert.Equal(t, 2, result.Written)
	assert.Equal(t, 1, result.Failures)
	assert.Equal(t, []int{2}, reported)

	lines := logboxtesting.ReadLines(t, out)
	assert.Equal(t, []string{`{"id":1}`, `{"id":3}`}, lines)
}

func TestPipeCopyFailuresKeepsBrokenLines(t *testing.T) {
	dir := t.TempDir()
	in := logboxtesting.WriteJSONL(t, dir, "in.json",
		`{"id":1}`,
		`not json at all`,
		`{"id":3}`,
	)
	out := filepath.Join(dir, "out.json")

	result := runPipe(t, &Pipe{CopyFailures: true}, out, in)
	assert.Equal(t, 3, result.Written)
	assert.Equal(t, 1, result.Failures)

	lines := logboxtesting.ReadLines(t, out)
	assert.Equal(t, []string{`{"id":1}`, `not json at all`, `{"id":3}`}, lines)
}
