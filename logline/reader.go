package logline

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fastjson"

	"github.com/teranos/logbox/errors"
)

const (
	// Scanner buffer sizing. Audit export lines run long when a request or
	// response body is embedded, so the ceiling is generous.
	initialLineBytes = 64 * 1024
	maxLineBytes     = 16 * 1024 * 1024
)

// Line is one line of input. Either Record is set (the line parsed as a
// JSON object) or Err is set (a parse failure, with the offending bytes
// still in Raw).
type Line struct {
	Source string // file path, or "-" for stdin
	Number int    // 1-based line number within Source, blank lines included
	Raw    []byte // the line exactly as read, without its trailing newline
	Record *Record
	Err    error
}

// Valid reports whether the line parsed as a record.
func (l *Line) Valid() bool {
	return l.Err == nil
}

// Reader is a forward-only cursor over one or more line-delimited JSON
// files, read in the order given. Files ending in .gz, .zst or .zstd are
// decompressed transparently. Blank lines are skipped.
//
// The usual loop is:
//
//	for r.Next() {
//		line := r.Line()
//		...
//	}
//	if err := r.Err(); err != nil {
//		...
//	}
type Reader struct {
	paths []string
	idx   int

	current     io.ReadCloser
	currentName string
	scanner     *bufio.Scanner
	lineNum     int

	parser fastjson.Parser
	rec    Record
	line   Line

	err    error
	closed bool
}

// NewReader opens a cursor over the given files. Every path is checked up
// front so a typo fails before any record is processed or any output is
// produced. The path "-" reads stdin.
func NewReader(paths ...string) (*Reader, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input files")
	}
	for _, path := range paths {
		if path == "-" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "checking input %s", path)
		}
	}
	return &Reader{paths: paths}, nil
}

// Next advances to the next non-blank line. It returns false at the end of
// the last file or on the first I/O error; check Err to tell the two apart.
func (r *Reader) Next() bool {
	if r.err != nil || r.closed {
		return false
	}
	for {
		if r.scanner == nil {
			if !r.advance() {
				return false
			}
		}
		if r.scanner.Scan() {
			r.lineNum++
			raw := r.scanner.Bytes()
			if len(bytes.TrimSpace(raw)) == 0 {
				continue
			}
			r.fill(raw)
			return true
		}
		if err := r.scanner.Err(); err != nil {
			r.err = errors.Wrapf(err, "reading %s", r.currentName)
			return false
		}
		// Clean end of the current file, move to the next one
		if err := r.closeCurrent(); err != nil {
			r.err = err
			return false
		}
	}
}

// Line returns the current line. It is only valid until the next call to
// Next; the reader reuses both the raw buffer and the parsed record.
func (r *Reader) Line() *Line {
	return &r.line
}

// Err returns the terminal I/O error, or nil if the reader stopped at a
// clean end of input. Parse failures are per-line and never end the stream.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the currently open file. Safe to call more than once.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.closeCurrent()
}

func (r *Reader) advance() bool {
	if r.idx >= len(r.paths) {
		return false
	}
	path := r.paths[r.idx]
	r.idx++

	in, err := openInput(path)
	if err != nil {
		r.err = err
		return false
	}
	r.current = in
	r.currentName = path
	r.lineNum = 0

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)
	r.scanner = sc
	return true
}

func (r *Reader) closeCurrent() error {
	r.scanner = nil
	if r.current == nil {
		return nil
	}
	err := r.current.Close()
	r.current = nil
	if err != nil {
		return errors.Wrapf(err, "closing %s", r.currentName)
	}
	return nil
}

func (r *Reader) fill(raw []byte) {
	r.line = Line{
		Source: r.currentName,
		Number: r.lineNum,
		Raw:    raw,
	}
	v, err := r.parser.ParseBytes(raw)
	if err != nil {
		r.line.Err = errors.Wrapf(err, "%s:%d", r.currentName, r.lineNum)
		return
	}
	if v.Type() != fastjson.TypeObject {
		r.line.Err = errors.Newf("%s:%d: not a JSON object, got %s", r.currentName, r.lineNum, v.Type())
		return
	}
	r.rec.val = v
	r.line.Record = &r.rec
}

// openInput opens path for reading, unwrapping gzip and zstd by file
// extension. Stdin ("-") is read as-is.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "reading gzip header of %s", path)
		}
		return &compressedFile{Reader: zr, codec: zr, file: f}, nil
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "reading zstd header of %s", path)
		}
		rc := zr.IOReadCloser()
		return &compressedFile{Reader: rc, codec: rc, file: f}, nil
	}
	return f, nil
}

// compressedFile pairs a decompressor with the file underneath it so both
// get closed together.
type compressedFile struct {
	io.Reader
	codec io.Closer
	file  *os.File
}

func (c *compressedFile) Close() error {
	err := c.codec.Close()
	if cerr := c.file.Close(); err == nil {
		err = cerr
	}
	return err
}
