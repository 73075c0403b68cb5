// Package logline reads, resolves, and writes line-delimited JSON log
// records. A Reader is a forward-only cursor over one or more export files;
// records keep their original key order and number formatting all the way
// through to output.
package logline

import (
	"strings"

	"github.com/valyala/fastjson"

	"github.com/teranos/logbox/errors"
)

// Record is one parsed log record: a JSON object with its key order and
// number formatting preserved.
type Record struct {
	val *fastjson.Value
}

// ParseRecord parses a single JSON object into a Record. Arrays and
// scalars are rejected; a record is always an object.
func ParseRecord(data []byte) (*Record, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing record")
	}
	if v.Type() != fastjson.TypeObject {
		return nil, errors.Newf("not a JSON object, got %s", v.Type())
	}
	return &Record{val: v}, nil
}

// Lookup resolves the path against the record. The second return is false
// when any segment is missing or a non-object value is hit partway down.
// A field holding JSON null is found and returns a TypeNull value; null
// and absent are not the same thing.
func (r *Record) Lookup(path FieldPath) (*fastjson.Value, bool) {
	v := r.val
	for _, segment := range path {
		if v.Type() != fastjson.TypeObject {
			return nil, false
		}
		next := v.Get(segment)
		if next == nil {
			return nil, false
		}
		v = next
	}
	return v, true
}

// Has reports whether the path resolves to any value, null included.
func (r *Record) Has(path FieldPath) bool {
	_, found := r.Lookup(path)
	return found
}

// MarshalTo appends the record as compact JSON to dst and returns the
// extended buffer. Key order and number text match the input.
func (r *Record) MarshalTo(dst []byte) []byte {
	return r.val.MarshalTo(dst)
}

// String returns the record as compact JSON.
func (r *Record) String() string {
	return string(r.MarshalTo(nil))
}

// Text renders a field value the way the filter expression language reads
// it: strings drop their quotes, everything else is compact JSON ("null",
// "true", "42", "{\"a\":1}").
func Text(v *fastjson.Value) string {
	if v == nil {
		return ""
	}
	if v.Type() == fastjson.TypeString {
		b, _ := v.StringBytes()
		return string(b)
	}
	return string(v.MarshalTo(nil))
}

// FieldPath addresses a nested field with dot notation, e.g.
// "protoPayload.authenticationInfo.principalEmail". Segments are plain
// object keys; there is no array indexing.
type FieldPath []string

// ParsePath splits a dotted field path into segments. Empty paths and
// empty segments ("a..b", trailing dots) are invalid expressions.
func ParsePath(raw string) (FieldPath, error) {
	if raw == "" {
		return nil, errors.NewInvalidExpressionError("field path cannot be empty")
	}
	segments := strings.Split(raw, ".")
	for i, segment := range segments {
		if segment == "" {
			return nil, errors.NewInvalidExpressionError("field path %q has an empty segment at position %d", raw, i+1)
		}
	}
	return FieldPath(segments), nil
}

// MustParsePath is ParsePath for known-good literals; it panics on error.
func MustParsePath(raw string) FieldPath {
	path, err := ParsePath(raw)
	if err != nil {
		panic(err)
	}
	return path
}

func (p FieldPath) String() string {
	return strings.Join(p, ".")
}
