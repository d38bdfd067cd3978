package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatJSON   OutputFormat = "json"
	FormatYAML   OutputFormat = "yaml"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatPretty, "":
		return FormatPretty, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want pretty|json|yaml)", s)
}

func PrintJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func PrintYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// PrintStructured writes v as JSON or YAML. It reports false for the pretty
// format so callers can render their own text.
func PrintStructured(w io.Writer, format OutputFormat, v any) (bool, error) {
	switch format {
	case FormatJSON:
		return true, PrintJSON(w, v)
	case FormatYAML:
		return true, PrintYAML(w, v)
	}
	return false, nil
}

// StringList is a repeatable string flag.
type StringList []string

func (s *StringList) String() string { return strings.Join(*s, ",") }

func (s *StringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Int64List is a repeatable integer flag.
type Int64List []int64

func (l *Int64List) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

func (l *Int64List) Set(v string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", v)
	}
	*l = append(*l, n)
	return nil
}

// FormatFloat renders an optional number for tables; nil prints "-".
func FormatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', 6, 64)
}
