package logline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logboxtesting "github.com/teranos/logbox/internal/testing"
)

func TestReaderSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := logboxtesting.WriteJSONL(t, dir, "audit.json",
		`{"severity":"INFO","id":1}`,
		`{"severity":"ERROR","id":2}`,
		`{"severity":"WARNING","id":3}`,
	)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	var ids []int
	for r.Next() {
		line := r.Line()
		require.True(t, line.Valid())
		assert.Equal(t, path, line.Source)

		v, found := line.Record.Lookup(MustParsePath("id"))
		require.True(t, found)
		id, err := v.Int()
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.NoError(t, r.Err())
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestReaderMultipleFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := logboxtesting.WriteJSONL(t, dir, "a.json",
		`{"id":"a1"}`,
		`{"id":"a2"}`,
	)
	b := logboxtesting.WriteJSONL(t, dir, "b.json",
		`{"id":"b1"}`,
		`{"id":"b2"}`,
		`{"id":"b3"}`,
	)

	r, err := NewReader(a, b)
	require.NoError(t, err)
	defer r.Close()

	var ids []string
	for r.Next() {
		line := r.Line()
		require.True(t, line.Valid())
		v, found := line.Record.Lookup(MustParsePath("id"))
		require.True(t, found)
		ids = append(ids, Text(v))
	}
	require.NoError(t, r.Err())

	// File order first, line order within each file
	assert.Equal(t, []string{"a1", "a2", "b1", "b2", "b3"}, ids)
}

func TestReaderSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := logboxtesting.WriteJSONL(t, dir, "gappy.json",
		`{"id":1}`,
		``,
		`   `,
		`{"id":2}`,
	)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	var numbers []int
	for r.Next() {
		numbers = append(numbers, r.Line().Number)
	}
	require.NoError(t, r.Err())

	// Blank lines are skipped but still counted, so numbers stay honest
	assert.Equal(t, []int{1, 4}, numbers)
}

func TestReaderContinuesPastParseFailures(t *testing.T) {
	dir := t.TempDir()
	lines := []string{
		`{"id":1}`, `{"id":2}`, `{"id":3}`, `{"id":4}`,
		`{"id":5,"truncated":`,
		`{"id":6}`, `{"id":7}`, `{"id":8}`, `{"id":9}`, `{"id":10}`,
	}
	path := logboxtesting.WriteJSONL(t, dir, "damaged.json", lines...)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	var valid, failed int
	for r.Next() {
		line := r.Line()
		if line.Valid() {
			valid++
			continue
		}
		failed++
		assert.Equal(t, 5, line.Number)
		assert.Equal(t, `{"id":5,"truncated":`, string(line.Raw))
		assert.Nil(t, line.Record)
	}
	require.NoError(t, r.Err())
	assert.Equal(t, 9, valid)
	assert.Equal(t, 1, failed)
}

func TestReaderRejectsNonObjectLines(t *testing.T) {
	dir := t.TempDir()
	path := logboxtesting.WriteJSONL(t, dir, "mixed.json",
		`{"id":1}`,
		`[1,2,3]`,
		`"just a string"`,
	)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	var valid, failed int
	for r.Next() {
		if r.Line().Valid() {
			valid++
		} else {
			failed++
		}
	}
	require.NoError(t, r.Err())
	assert.Equal(t, 1, valid)
	assert.Equal(t, 2, failed)
}

func TestReaderGzipTransparency(t *testing.T) {
	dir := t.TempDir()
	path := logboxtesting.WriteGzipJSONL(t, dir, "export.json.gz",
		`{"id":1}`,
		`{"id":2}`,
	)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	count := 0
	for r.Next() {
		require.True(t, r.Line().Valid())
		count++
	}
	require.NoError(t, r.Err())
	assert.Equal(t, 2, count)
}

func TestReaderMissingFileFailsBeforeReading(t *testing.T) {
	dir := t.TempDir()
	good := logboxtesting.WriteJSONL(t, dir, "good.json", `{"id":1}`)

	_, err := NewReader(good, dir+"/no-such-file.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-file.json")
}

func TestReaderNoInputs(t *testing.T) {
	_, err := NewReader()
	require.Error(t, err)
}
