package logline

import (
	"io"

	"github.com/valyala/fastjson"

	"github.com/teranos/logbox/errors"
)

// NormalizeArray reads one whole JSON document from src and writes each
// element of its top-level array as its own line. Some export tools wrap a
// capture in a single array instead of emitting line-delimited records;
// this unwraps them. The element count is returned.
//
// The document is parsed in full before anything is written, so a
// malformed document produces no partial output.
func NormalizeArray(src io.Reader, w *Writer) (int, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, errors.Wrap(err, "reading array document")
	}

	var p fastjson.Parser
	root, err := p.ParseBytes(data)
	if err != nil {
		return 0, errors.Wrap(err, "parsing array document")
	}
	if root.Type() != fastjson.TypeArray {
		return 0, errors.Newf("expected a top-level JSON array, got %s", root.Type())
	}

	elements, _ := root.Array()
	for i, element := range elements {
		if element.Type() != fastjson.TypeObject {
			return i, errors.Newf("array element %d is %s, not an object", i+1, element.Type())
		}
		if err := w.WriteRecord(&Record{val: element}); err != nil {
			return i, err
		}
	}
	return len(elements), nil
}
