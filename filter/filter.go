// Package filter matches records against field=value constraint lists.
// An expression either includes exactly its matches or excludes exactly
// its matches; either way, all constraints must hold at once for a record
// to count as a match.
package filter

import (
	"strings"

	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/logline"
)

// Mode says which way an expression cuts.
type Mode int

const (
	Include Mode = iota
	Exclude
)

func (m Mode) String() string {
	if m == Exclude {
		return "exclude"
	}
	return "include"
}

// ParseMode reads the subcommand argument form of a Mode.
func ParseMode(raw string) (Mode, error) {
	switch raw {
	case "include":
		return Include, nil
	case "exclude":
		return Exclude, nil
	}
	return 0, errors.NewInvalidExpressionError("mode must be include or exclude, got %q", raw)
}

// Constraint is one field=value requirement. The value is compared against
// the field's textual form: strings without quotes, everything else as
// compact JSON.
type Constraint struct {
	Path  logline.FieldPath
	Value string
}

// Expression is a parsed filter: a polarity plus one or more constraints.
type Expression struct {
	Mode        Mode
	Constraints []Constraint
}

// Parse builds an Expression from the command-line form
// "field=value,other.field=value". The value runs from the first '=' to
// the end of its segment, so values may themselves contain '='. Values
// cannot contain commas.
func Parse(mode Mode, raw string) (*Expression, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewInvalidExpressionError("filter expression cannot be empty")
	}

	segments := strings.Split(raw, ",")
	constraints := make([]Constraint, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return nil, errors.NewInvalidExpressionError("filter expression %q has an empty constraint", raw)
		}
		field, value, ok := strings.Cut(segment, "=")
		if !ok {
			return nil, errors.WithHint(
				errors.NewInvalidExpressionError("constraint %q has no '='", segment),
				"constraints look like severity=ERROR, joined by commas")
		}
		path, err := logline.ParsePath(field)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, Constraint{Path: path, Value: value})
	}

	return &Expression{Mode: mode, Constraints: constraints}, nil
}

// Match reports whether every constraint holds for the record. An absent
// field never matches, so one missing field fails the whole conjunction.
// A field holding JSON null matches the value "null".
func (e *Expression) Match(rec *logline.Record) bool {
	for _, c := range e.Constraints {
		v, found := rec.Lookup(c.Path)
		if !found || logline.Text(v) != c.Value {
			return false
		}
	}
	return true
}

// Keep reports whether the record stays in the stream. Include keeps
// exactly the matching records. Exclude drops exactly the matching
// records, so a record survives an exclude by failing any one constraint.
func (e *Expression) Keep(rec *logline.Record) bool {
	match := e.Match(rec)
	if e.Mode == Include {
		return match
	}
	return !match
}

func (e *Expression) String() string {
	parts := make([]string, len(e.Constraints))
	for i, c := range e.Constraints {
		parts[i] = c.Path.String() + "=" + c.Value
	}
	return e.Mode.String() + " " + strings.Join(parts, ",")
}
