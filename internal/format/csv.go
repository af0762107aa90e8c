// Package format converts upstream JSON payloads to CSV text.
//
// The converter is schema-agnostic: it locates the record set, flattens
// nested objects into dotted column names and renders the union of all
// columns. Upstream responses are either a list envelope ("results" is an
// array), a single-object envelope ("results" is an object), a bare array
// (e.g. market holidays) or a bare object (e.g. market status).
package format

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

func JSONToCSV(payload []byte) (string, error) {
	if !gjson.ValidBytes(payload) {
		return "", fmt.Errorf("invalid JSON payload")
	}

	root := gjson.ParseBytes(payload)
	records, err := extractRecords(root)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", nil
	}

	rows := make([]map[string]string, 0, len(records))
	columns := map[string]struct{}{}
	for _, record := range records {
		row := map[string]string{}
		if record.IsObject() {
			flatten("", record, row)
		} else {
			// Arrays of scalars get a single synthetic column.
			row["value"] = cellValue(record)
		}
		for key := range row {
			columns[key] = struct{}{}
		}
		rows = append(rows, row)
	}

	header := make([]string, 0, len(columns))
	for key := range columns {
		header = append(header, key)
	}
	sort.Strings(header)

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write CSV header: %w", err)
	}

	line := make([]string, len(header))
	for _, row := range rows {
		for i, key := range header {
			line[i] = row[key]
		}
		if err := w.Write(line); err != nil {
			return "", fmt.Errorf("write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush CSV: %w", err)
	}

	return buf.String(), nil
}

func extractRecords(root gjson.Result) ([]gjson.Result, error) {
	if root.IsArray() {
		return root.Array(), nil
	}

	if !root.IsObject() {
		return nil, fmt.Errorf("payload is neither a JSON object nor an array")
	}

	results := root.Get("results")
	switch {
	case results.IsArray():
		return results.Array(), nil
	case results.IsObject():
		return []gjson.Result{results}, nil
	default:
		// No results key (or a scalar one): the envelope itself is the record.
		return []gjson.Result{root}, nil
	}
}

// flatten writes record fields into row, joining nested object keys with dots.
func flatten(prefix string, record gjson.Result, row map[string]string) {
	record.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if prefix != "" {
			name = prefix + "." + name
		}

		if value.IsObject() {
			flatten(name, value, row)
			return true
		}

		row[name] = cellValue(value)
		return true
	})
}

func cellValue(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	case gjson.Number:
		// Raw preserves the upstream representation (no float re-rounding).
		return v.Raw
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	default:
		// Embedded arrays stay as compact JSON text inside the cell.
		return v.Raw
	}
}
