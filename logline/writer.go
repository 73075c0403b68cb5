package logline

import (
	"bufio"
	"os"

	"github.com/teranos/logbox/errors"
)

const outputBufferBytes = 64 * 1024

// Writer writes records one per line. Output is buffered; nothing is
// guaranteed on disk until Close.
type Writer struct {
	path   string
	file   *os.File
	buf    *bufio.Writer
	mbuf   []byte
	lines  int
	closed bool
}

// NewWriter opens path for writing, truncating any existing file. The
// path "-" selects stdout, which is flushed but never closed.
func NewWriter(path string) (*Writer, error) {
	if path == "-" {
		return &Writer{path: path, buf: bufio.NewWriterSize(os.Stdout, outputBufferBytes)}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "creating output %s", path)
	}
	return &Writer{path: path, file: f, buf: bufio.NewWriterSize(f, outputBufferBytes)}, nil
}

// WriteRecord writes rec as one compact JSON line.
func (w *Writer) WriteRecord(rec *Record) error {
	w.mbuf = rec.MarshalTo(w.mbuf[:0])
	w.mbuf = append(w.mbuf, '\n')
	if _, err := w.buf.Write(w.mbuf); err != nil {
		return errors.Wrapf(err, "writing %s", w.Name())
	}
	w.lines++
	return nil
}

// WriteRaw writes a line verbatim, newline appended.
func (w *Writer) WriteRaw(raw []byte) error {
	if _, err := w.buf.Write(raw); err != nil {
		return errors.Wrapf(err, "writing %s", w.Name())
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return errors.Wrapf(err, "writing %s", w.Name())
	}
	w.lines++
	return nil
}

// Count returns the number of lines written so far.
func (w *Writer) Count() int {
	return w.lines
}

// Name returns the destination for messages: the path, or "stdout".
func (w *Writer) Name() string {
	if w.file == nil {
		return "stdout"
	}
	return w.path
}

// Close flushes buffered output and closes the file. Safe to call more
// than once; later calls return nil.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.buf.Flush()
	if w.file != nil {
		if cerr := w.file.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return errors.Wrapf(err, "closing %s", w.Name())
	}
	return nil
}
