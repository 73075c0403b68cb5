package display

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/teranos/logbox/errors"
)

// Format selects how structured command output is rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat reads a --format flag value.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(raw), nil
	}
	return "", errors.NewInvalidExpressionError("format must be table, json or yaml, got %q", raw)
}

// MarshalJSON marshals with indentation; command output is read by humans
// first and piped second.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// OutputJSON marshals and prints JSON
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	fmt.Println(string(data))
	return nil
}

// OutputYAML marshals and prints YAML
func OutputYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	fmt.Print(string(data))
	return nil
}
