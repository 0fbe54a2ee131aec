// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"sigs.k8s.io/yaml"
)

// Format is an output rendering selected with --output.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
	FormatNone  Format = "none"
)

// ValidateFormat validates and returns the output format.
func ValidateFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case FormatJSON, FormatYAML, FormatTable, FormatNone:
		return Format(strings.ToLower(format)), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (supported: %v)", format, []Format{FormatJSON, FormatYAML, FormatTable, FormatNone})
	}
}

// Column is one column of table output.
type Column[T any] struct {
	Header string
	Field  func(T) string
}

// Table renders a list of T. JSON and YAML print the items as a plain array.
type Table[T any] struct {
	Kind         string
	Columns      []Column[T]
	EmptyMessage string
}

func (t *Table[T]) formatTable(items []T) string {
	if len(items) == 0 {
		if t.EmptyMessage != "" {
			return t.EmptyMessage + "\n"
		}
		return fmt.Sprintf("No %s found\n", strings.ToLower(t.Kind))
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 4, ' ', 0)

	var headers []string
	for _, col := range t.Columns {
		headers = append(headers, col.Header)
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, item := range items {
		var values []string
		for _, col := range t.Columns {
			values = append(values, col.Field(item))
		}
		fmt.Fprintf(w, "%s\n", strings.Join(values, "\t"))
	}

	w.Flush()
	return buf.String()
}

// Format renders items in the given format.
func (t *Table[T]) Format(items []T, format Format) (string, error) {
	if items == nil {
		items = []T{}
	}
	switch format {
	case FormatTable:
		return t.formatTable(items), nil
	default:
		return Marshal(items, format)
	}
}

// Write formats items and writes them to out.
func (t *Table[T]) Write(out io.Writer, items []T, format Format) error {
	s, err := t.Format(items, format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, s)
	return err
}

// Marshal renders a single object. Table output falls back to JSON for objects.
func Marshal(obj any, format Format) (string, error) {
	switch format {
	case FormatNone:
		return "", nil
	case FormatYAML:
		data, err := yaml.Marshal(obj)
		if err != nil {
			return "", fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		return string(data), nil
	case FormatJSON, FormatTable, "":
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// Print writes a single object to out.
func Print(out io.Writer, obj any, format Format) error {
	if obj == nil {
		return nil
	}
	s, err := Marshal(obj, format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, s)
	return err
}
